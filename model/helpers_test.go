package model

import (
	"testing"

	"github.com/sheikhrachel/go-life/utils"
)

// gridFromStrings builds a grid from rows where 'X' is alive
func gridFromStrings(t *testing.T, rows ...string) *Grid {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			t.Fatalf("row %d has length %d, want %d", r, len(row), cols)
		}
		for c := range cols {
			g.Set(r, c, row[c] == 'X')
		}
	}
	return g
}

func gridString(g *Grid) string {
	s := ""
	for r := range g.Rows() {
		for c := range g.Cols() {
			if g.Get(r, c) {
				s += "X"
			} else {
				s += "-"
			}
		}
		s += "\n"
	}
	return s
}

func assertGridEqual(t *testing.T, got, want *Grid) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("grid mismatch\ngot (%dx%d):\n%swant (%dx%d):\n%s",
			got.Rows(), got.Cols(), gridString(got), want.Rows(), want.Cols(), gridString(want))
	}
}

func testConfig(parallel bool) utils.Config {
	config := utils.DefaultConfig()
	config.UseParallel = parallel
	return config
}
