package rules

/*
Survives applies Conway's Game of Life rules to determine the next state of a cell.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3 live
neighbors is born: (alive && neighbors == 2) || neighbors == 3
*/
func Survives(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
