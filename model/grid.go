package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// Grid represents the game board as rows x cols boolean cells
type Grid struct {
	rows    int
	cols    int
	cells   [][]bool
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Reset(rows, cols)
	return g
}

// NewGridFromRows builds a grid from rows of equal length
func NewGridFromRows(rows [][]bool) *Grid {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		copy(g.cells[r], row)
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsEmpty reports whether the grid has no cells
func (g *Grid) IsEmpty() bool {
	return g.rows == 0 || g.cols == 0
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(rows, cols int) {
	rows, cols = max(rows, 0), max(cols, 0)
	g.rows = rows
	g.cols = cols
	g.history = nil

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
	g.history = nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; cells outside the grid are dead
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Clone returns a deep copy of the cells. History is not carried over.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	for r := range g.rows {
		copy(c.cells[r], g.cells[r])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the dimensions and cell states
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InheritHistory copies the recent-state history of prev so stagnation
// detection survives the swap to a freshly computed generation
func (g *Grid) InheritHistory(prev *Grid) {
	if prev == nil {
		return
	}
	g.history = append(g.history[:0], prev.history...)
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	// Keep only the last few states to detect cycles
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state already appeared in the
// recorded history, i.e. a still life or an oscillator of period <= 2
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 2 {
		return false
	}

	currentHash := g.GetGridHash()
	// The newest entry is the current state itself once UpdateHistory ran
	prior := g.history[:len(g.history)-1]
	if g.history[len(g.history)-1] != currentHash {
		prior = g.history
	}

	for i := len(prior) - 1; i >= 0 && i >= len(prior)-2; i-- {
		if prior[i] == currentHash {
			return true
		}
	}
	return false
}

// AddGlider adds a glider pattern with its bounding box at (startRow, startCol)
func (g *Grid) AddGlider(startRow, startCol int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, row := range pattern {
		for c, cell := range row {
			g.Set(startRow+r, startCol+c, cell)
		}
	}
}

// AddBlock adds a 2x2 still life with its top-left cell at (startRow, startCol)
func (g *Grid) AddBlock(startRow, startCol int) {
	g.Set(startRow, startCol, true)
	g.Set(startRow, startCol+1, true)
	g.Set(startRow+1, startCol, true)
	g.Set(startRow+1, startCol+1, true)
}

// AddOscillator adds a horizontal blinker oscillator pattern
func (g *Grid) AddOscillator(startRow, startCol int) {
	g.Set(startRow, startCol, true)
	g.Set(startRow, startCol+1, true)
	g.Set(startRow, startCol+2, true)
}
