package model

// Resolve maps a neighbor coordinate onto a real index along one axis.
// Without wrapping, coordinates outside [0, size) have no neighbor. With
// wrapping the axis is joined end to end; size must be positive.
func Resolve(coord, size int, wrap bool) (int, bool) {
	if wrap {
		return ((coord % size) + size) % size, true
	}
	if coord < 0 || coord >= size {
		return 0, false
	}
	return coord, true
}
