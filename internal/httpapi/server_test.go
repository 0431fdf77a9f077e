package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i, score := range []uint64{120, 880, 460} {
		_, err := store.SaveScore(storage.Result{
			RunID:   []string{"run-a", "run-b", "run-c"}[i],
			Player:  "p",
			Score:   score,
			MaxTile: 64,
			Moves:   10 * (i + 1),
		})
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	return New(store, nil), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestTopScores(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path   string
		status int
		scores []uint64
	}{
		{"/scores", http.StatusOK, []uint64{880, 460, 120}},
		{"/scores?limit=2", http.StatusOK, []uint64{880, 460}},
		{"/scores?limit=0", http.StatusBadRequest, nil},
		{"/scores?limit=101", http.StatusBadRequest, nil},
		{"/scores?limit=abc", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}

			var res scoresRes
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(res.Scores) != len(tt.scores) {
				t.Fatalf("got %d scores, want %d", len(res.Scores), len(tt.scores))
			}
			for i, want := range tt.scores {
				if res.Scores[i].Score != want {
					t.Errorf("score[%d] = %d, want %d", i, res.Scores[i].Score, want)
				}
			}
		})
	}
}

func TestEmptyScoresIsArray(t *testing.T) {
	s, store := newTestServer(t)
	if err := store.ClearScores(); err != nil {
		t.Fatal(err)
	}

	rec := get(t, s, "/scores")
	if rec.Body.String() != "{\"scores\":[]}\n" {
		t.Errorf("body = %q, want an empty array", rec.Body.String())
	}
}

func TestScoreByRun(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/scores/run-b")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var entry storage.ScoreEntry
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.RunID != "run-b" || entry.Score != 880 || entry.Moves != 20 {
		t.Errorf("entry = %+v", entry)
	}

	if rec := get(t, s, "/scores/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown run status = %d, want 404", rec.Code)
	}
}

func TestStats(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var stats storage.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 880 || stats.TotalScore != 1460 || stats.TotalMoves != 60 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

type failingReader struct{}

func (failingReader) TopScores(int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("boom")
}

func (failingReader) ScoreByRun(string) (*storage.ScoreEntry, error) {
	return nil, errors.New("boom")
}

func (failingReader) Stats() (*storage.Stats, error) {
	return nil, errors.New("boom")
}

func TestStorageErrors(t *testing.T) {
	s := New(failingReader{}, nil)
	for _, path := range []string{"/scores", "/scores/x", "/stats"} {
		if rec := get(t, s, path); rec.Code != http.StatusInternalServerError {
			t.Errorf("%s status = %d, want 500", path, rec.Code)
		}
	}
}
