package model

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		coord  int
		size   int
		wrap   bool
		want   int
		wantOK bool
	}{
		{"inside no wrap", 2, 5, false, 2, true},
		{"first no wrap", 0, 5, false, 0, true},
		{"before start no wrap", -1, 5, false, 0, false},
		{"past end no wrap", 5, 5, false, 0, false},
		{"inside wrap", 3, 5, true, 3, true},
		{"before start wrap", -1, 5, true, 4, true},
		{"past end wrap", 5, 5, true, 0, true},
		{"size one wrap low", -1, 1, true, 0, true},
		{"size one wrap high", 1, 1, true, 0, true},
		{"size one no wrap", 1, 1, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.coord, tt.size, tt.wrap)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%d, %d, %v) ok = %v, want %v", tt.coord, tt.size, tt.wrap, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%d, %d, %v) = %d, want %d", tt.coord, tt.size, tt.wrap, got, tt.want)
			}
		})
	}
}
