package model

import (
	"bufio"
	"io"
)

const clearScreenSeq = "\033[H\033[2J"

// TerminalRenderer writes grids as text, one row per line
type TerminalRenderer struct {
	Out   io.Writer
	Alive byte
	Dead  byte
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				w.WriteByte(r.Alive)
			} else {
				w.WriteByte(r.Dead)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearScreenSeq)
	return err
}
