package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf, Alive: 'X', Dead: '-'}

	if err := r.Display(gridFromStrings(t, "X--", "-XX")); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), "X--\n-XX\n"; got != want {
		t.Errorf("Display wrote %q, want %q", got, want)
	}

	buf.Reset()
	if err := r.Display(NewGrid(0, 0)); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty grid rendered %q", buf.String())
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf, Alive: '#', Dead: '.'}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != clearScreenSeq {
		t.Errorf("Clear wrote %q", buf.String())
	}
}
