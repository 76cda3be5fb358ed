package game

import "fmt"

type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.Row, cell.Col)
}

// Step returns the cell one unit away in the given direction
func (cell Cell) Step(dir Direction) Cell {
	dRow, dCol := dir.Delta()
	return Cell{Row: cell.Row + dRow, Col: cell.Col + dCol}
}

func (cell Cell) Neighbors() [4]Cell {
	return [4]Cell{
		cell.Step(DirUp),
		cell.Step(DirDown),
		cell.Step(DirLeft),
		cell.Step(DirRight),
	}
}

// Distance is the Manhattan distance between two cells
func (cell Cell) Distance(other Cell) int {
	return abs(cell.Row-other.Row) + abs(cell.Col-other.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
