package t2048

import (
	"errors"
	"fmt"
	"io"
)

// SelfTestCase is one reference slide: ranks in, ranks out, and points scored.
type SelfTestCase struct {
	In     Line
	Out    Line
	Points uint64
}

// ErrSelfTestFailed is returned by RunSelfTest when a case does not match.
var ErrSelfTestFailed = errors.New("t2048: self-test failed")

// SelfTestCases returns the reference slide table. Values are ranks,
// so 1 is a 2-tile, 2 is a 4-tile and 3 is an 8-tile.
func SelfTestCases() []SelfTestCase {
	return []SelfTestCase{
		{In: Line{0, 0, 0, 1}, Out: Line{1, 0, 0, 0}, Points: 0},
		{In: Line{0, 0, 1, 1}, Out: Line{2, 0, 0, 0}, Points: 4},
		{In: Line{0, 1, 0, 1}, Out: Line{2, 0, 0, 0}, Points: 4},
		{In: Line{1, 0, 0, 1}, Out: Line{2, 0, 0, 0}, Points: 4},
		{In: Line{1, 0, 1, 0}, Out: Line{2, 0, 0, 0}, Points: 4},
		{In: Line{1, 1, 1, 0}, Out: Line{2, 1, 0, 0}, Points: 4},
		{In: Line{1, 0, 1, 1}, Out: Line{2, 1, 0, 0}, Points: 4},
		{In: Line{1, 1, 0, 1}, Out: Line{2, 1, 0, 0}, Points: 4},
		{In: Line{1, 1, 1, 1}, Out: Line{2, 2, 0, 0}, Points: 8},
		{In: Line{2, 2, 1, 1}, Out: Line{3, 2, 0, 0}, Points: 12},
		{In: Line{1, 1, 2, 2}, Out: Line{2, 3, 0, 0}, Points: 12},
		{In: Line{3, 0, 1, 1}, Out: Line{3, 2, 0, 0}, Points: 4},
		{In: Line{2, 0, 1, 1}, Out: Line{2, 2, 0, 0}, Points: 4},
	}
}

// RunSelfTest slides every reference case and writes a report to w.
// It stops at the first mismatch and returns ErrSelfTestFailed.
func RunSelfTest(w io.Writer) error {
	cases := SelfTestCases()
	for _, tc := range cases {
		line := tc.In
		res := SlideLine(&line)
		if line == tc.Out && res.ScoreDelta == tc.Points {
			continue
		}
		fmt.Fprintf(w, "%s=> %s(%d points) expected %s=> %s(%d points)\n",
			formatLine(tc.In), formatLine(line), res.ScoreDelta,
			formatLine(tc.In), formatLine(tc.Out), tc.Points)
		return ErrSelfTestFailed
	}

	fmt.Fprintf(w, "All %d tests executed successfully\n", len(cases))
	return nil
}

func formatLine(l Line) string {
	s := ""
	for _, r := range l {
		s += fmt.Sprintf("%d ", r)
	}
	return s
}
