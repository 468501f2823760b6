package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	neighbors <= 1  -> dead
	neighbors == 2  -> unchanged
	neighbors == 3  -> alive
	neighbors >= 4  -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors == 2:
		return alive
	case neighbors == 3:
		return true
	default:
		return false
	}
}
