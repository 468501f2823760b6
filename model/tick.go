package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// neighborOffsets lists the (row, col) deltas of the eight surrounding cells
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors counts the living cells around (row, col) under the given boundary policy
func CountNeighbors(g *Grid, row, col int, wrap bool) int {
	count := 0
	for _, off := range neighborOffsets {
		r, ok := Resolve(row+off[0], g.rows, wrap)
		if !ok {
			continue
		}
		c, ok := Resolve(col+off[1], g.cols, wrap)
		if !ok {
			continue
		}
		if g.cells[r][c] {
			count++
		}
	}
	return count
}

// Advance computes the next generation of g. The result is a new grid of the
// same dimensions; g is only read from.
func Advance(g *Grid, wrap bool) *Grid {
	next := NewGrid(g.rows, g.cols)
	if g.IsEmpty() {
		return next
	}
	advanceRows(g, next, 0, g.rows, wrap)
	return next
}

// advanceRows writes rows [startRow, endRow) of next from the snapshot src
func advanceRows(src, next *Grid, startRow, endRow int, wrap bool) {
	for r := startRow; r < endRow; r++ {
		advanceRow(src, next, r, wrap)
	}
}

func advanceRow(src, next *Grid, row int, wrap bool) {
	for c := range src.cols {
		next.cells[row][c] = rules.ApplyConwayRules(CountNeighbors(src, row, c, wrap), src.cells[row][c])
	}
}

// AdvanceParallel calculates the next generation with rows split across workers.
// Workers read only from g and each writes a disjoint band of rows.
func AdvanceParallel(g *Grid, wrap bool, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.cols)
	} else {
		next = NewGrid(g.rows, g.cols)
	}
	if g.IsEmpty() {
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			advanceRows(g, next, startRow, endRow, wrap)
			return nil
		})
	}

	// Workers never fail; Wait is the barrier before next is handed back
	_ = eg.Wait()

	return next
}

// NextGeneration calculates the next generation based on configuration
func (g *Grid) NextGeneration(config utils.Config, wrap bool, pool *GridPool) *Grid {
	var next *Grid
	if config.UseParallel {
		next = AdvanceParallel(g, wrap, pool)
	} else {
		next = Advance(g, wrap)
	}
	next.InheritHistory(g)
	return next
}
