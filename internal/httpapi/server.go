// Package httpapi serves the read-only leaderboard over HTTP.
//
// Endpoints:
//   - GET /health         liveness probe
//   - GET /scores         top scores, ?limit=n (1..100, default 10)
//   - GET /scores/{run}   a single recorded game
//   - GET /stats          aggregated statistics
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// MaxLimit caps the number of scores a single request may return.
const MaxLimit = 100

// Reader is the score storage the API reads from.
// *storage.Store satisfies it.
type Reader interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
	ScoreByRun(runID string) (*storage.ScoreEntry, error)
	Stats() (*storage.Stats, error)
}

// Server bundles the router and its dependencies.
type Server struct {
	r      *chi.Mux
	scores Reader
	logger *log.Logger
}

// New constructs a Server, installs middleware, and registers routes.
func New(scores Reader, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{r: chi.NewRouter(), scores: scores, logger: logger}

	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(s.requestLogger)                 // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"2048","endpoints":["/health","/scores","/scores/{run}","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/scores", func(r chi.Router) {
		r.Get("/", s.handleTopScores)
		r.Get("/{run}", s.handleScore)
	})
	s.r.Get("/stats", s.handleStats)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves HTTP on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP API", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and duration of every request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

type scoresRes struct {
	Scores []storage.ScoreEntry `json:"scores"`
}

func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	limit := storage.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLimit {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}

	entries, err := s.scores.TopScores(limit)
	if err != nil {
		s.logger.Error("top scores", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, scoresRes{Scores: entries})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	entry, err := s.scores.ScoreByRun(chi.URLParam(r, "run"))
	if err != nil {
		s.logger.Error("score by run", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scores.Stats()
	if err != nil {
		s.logger.Error("stats", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
