// Package stream publishes simulation generations to websocket viewers.
package stream

import "github.com/sheikhrachel/go-life/model"

// Frame is the JSON payload sent to viewers for each displayed generation.
type Frame struct {
	Generation int      `json:"generation"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Living     int      `json:"living"`
	Wrap       bool     `json:"wrap"`
	Cells      []string `json:"cells"`
}

// NewFrame encodes g as one string per row using the given glyphs.
func NewFrame(generation int, g *model.Grid, wrap bool, alive, dead byte) Frame {
	f := Frame{
		Generation: generation,
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Living:     g.CountLivingCells(),
		Wrap:       wrap,
		Cells:      make([]string, g.Rows()),
	}
	buf := make([]byte, g.Cols())
	for r := range g.Rows() {
		for c := range g.Cols() {
			if g.Get(r, c) {
				buf[c] = alive
			} else {
				buf[c] = dead
			}
		}
		f.Cells[r] = string(buf)
	}
	return f
}
