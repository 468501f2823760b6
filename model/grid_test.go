package model

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("NewGrid(3, 4) = %dx%d", g.Rows(), g.Cols())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("new grid has %d living cells", n)
	}

	neg := NewGrid(-2, 5)
	if neg.Rows() != 0 || !neg.IsEmpty() {
		t.Errorf("NewGrid(-2, 5) = %dx%d, want empty", neg.Rows(), neg.Cols())
	}
}

func TestGridGetSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, true)
	g.Set(0, 2, true)
	g.Set(2, 0, true)
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("out of bounds Set changed %d cells", n)
	}
	if g.Get(-1, -1) || g.Get(5, 5) {
		t.Error("out of bounds Get reported a living cell")
	}

	g.Set(1, 0, true)
	if !g.Get(1, 0) || g.Get(0, 1) {
		t.Error("Set addressed the wrong cell")
	}
}

func TestNewGridFromRows(t *testing.T) {
	g := NewGridFromRows([][]bool{
		{true, false, false},
		{false, false, true},
	})
	want := gridFromStrings(t, "X--", "--X")
	assertGridEqual(t, g, want)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := gridFromStrings(t, "X-", "-X")
	c := g.Clone()
	c.Set(0, 1, true)
	if g.Get(0, 1) {
		t.Error("mutating the clone changed the original")
	}
	if g.Equal(c) {
		t.Error("Equal reported different grids as equal")
	}
}

func TestGridEqualDimensions(t *testing.T) {
	if NewGrid(1, 4).Equal(NewGrid(2, 2)) {
		t.Error("grids of different shapes compared equal")
	}
	if NewGrid(2, 2).Equal(nil) {
		t.Error("grid compared equal to nil")
	}
	if !NewGrid(0, 0).Equal(NewGrid(0, 0)) {
		t.Error("empty grids compared unequal")
	}
}

func TestGridHash(t *testing.T) {
	if NewGrid(1, 4).GetGridHash() == NewGrid(2, 2).GetGridHash() {
		t.Error("hash ignores dimensions")
	}

	a := gridFromStrings(t, "X-", "--")
	b := gridFromStrings(t, "-X", "--")
	if a.GetGridHash() == b.GetGridHash() {
		t.Error("different grids share a hash")
	}
	if a.GetGridHash() != a.Clone().GetGridHash() {
		t.Error("equal grids hash differently")
	}
}

func TestGridResetAndClear(t *testing.T) {
	g := gridFromStrings(t, "XX", "XX")
	g.UpdateHistory()
	g.Clear()
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("Clear left %d living cells", n)
	}

	g.Set(0, 0, true)
	g.Reset(3, 1)
	if g.Rows() != 3 || g.Cols() != 1 || g.CountLivingCells() != 0 {
		t.Errorf("Reset(3, 1) = %dx%d with %d living", g.Rows(), g.Cols(), g.CountLivingCells())
	}
}

func TestIsStagnant(t *testing.T) {
	t.Run("still life", func(t *testing.T) {
		g := NewGrid(4, 4)
		g.AddBlock(1, 1)
		g.UpdateHistory()
		if g.IsStagnant() {
			t.Error("stagnant with a single history entry")
		}

		next := Advance(g, false)
		next.InheritHistory(g)
		next.UpdateHistory()
		if !next.IsStagnant() {
			t.Error("block not detected as stagnant")
		}
	})

	t.Run("glider", func(t *testing.T) {
		g := NewGrid(8, 8)
		g.AddGlider(0, 0)
		g.UpdateHistory()
		for range 3 {
			next := Advance(g, true)
			next.InheritHistory(g)
			next.UpdateHistory()
			if next.IsStagnant() {
				t.Fatal("moving glider reported stagnant")
			}
			g = next
		}
	})
}

func TestUpdateHistoryBounded(t *testing.T) {
	g := NewGrid(3, 3)
	for i := range 10 {
		g.Set(i%3, i/3%3, true)
		g.UpdateHistory()
	}
	if len(g.history) != historySize {
		t.Errorf("history length = %d, want %d", len(g.history), historySize)
	}
}

func TestGridPool(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 3)
	g.Set(1, 1, true)
	GridToPool(g, pool)
	GridToPool(g, nil)

	reused := pool.Get(2, 5)
	if reused.Rows() != 2 || reused.Cols() != 5 {
		t.Fatalf("pool.Get(2, 5) = %dx%d", reused.Rows(), reused.Cols())
	}
	if n := reused.CountLivingCells(); n != 0 {
		t.Errorf("pooled grid has %d living cells", n)
	}
}
