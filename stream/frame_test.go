package stream

import (
	"reflect"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func TestNewFrame(t *testing.T) {
	g := model.NewGrid(3, 4)
	g.AddBlock(0, 1)

	f := NewFrame(7, g, true, 'X', '-')
	want := Frame{
		Generation: 7,
		Rows:       3,
		Cols:       4,
		Living:     4,
		Wrap:       true,
		Cells:      []string{"-XX-", "-XX-", "----"},
	}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("NewFrame = %+v, want %+v", f, want)
	}
}

func TestNewFrameEmptyGrid(t *testing.T) {
	f := NewFrame(0, model.NewGrid(0, 0), false, 'X', '-')
	if f.Rows != 0 || f.Cols != 0 || len(f.Cells) != 0 {
		t.Errorf("NewFrame on empty grid = %+v", f)
	}
}
