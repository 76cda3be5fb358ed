package game

import (
	"math/rand"
	"sort"

	"github.com/gammazero/deque"
	"github.com/they4kman/gosnake/util/collections"
)

// GridState owns the snake body and the food on the play surface. Rows 0 and
// height, and columns 0 and width, are border; everything strictly between
// is interior.
type GridState struct {
	height, width int

	// Snake body; front is the tail, back is the head
	body       deque.Deque
	snakeCells collections.Set[Cell]
	foodCells  collections.Set[Cell]
	direction  Direction

	rand *rand.Rand

	ended  bool
	result StepResult

	// Cells whose occupancy changed since the last call to Changes
	changes []Cell
}

func newEmptyGrid(height, width int, rng *rand.Rand) *GridState {
	return &GridState{
		height:     height,
		width:      width,
		snakeCells: make(collections.Set[Cell]),
		foodCells:  make(collections.Set[Cell]),
		direction:  DirRight,
		rand:       rng,
	}
}

// NewGridState places a snake of initialLength cells horizontally at row
// height/2, starting at column 1 and heading right, then scatters foodCount
// food cells over the free interior.
func NewGridState(height, width, initialLength, foodCount int, rng *rand.Rand) (*GridState, error) {
	if height < 3 || width < 3 {
		return nil, newConfigError("grid of %dx%d has no interior", height, width)
	}
	if initialLength < 1 {
		return nil, newConfigError("initial snake length must be positive, got %d", initialLength)
	}
	if initialLength > width-1 {
		return nil, newConfigError("snake of length %d does not fit in %d interior columns", initialLength, width-1)
	}

	grid := newEmptyGrid(height, width, rng)

	for col := 1; col <= initialLength; col++ {
		grid.pushHead(Cell{Row: height / 2, Col: col})
	}

	if foodCount < 0 || foodCount > grid.NumFreeCells() {
		return nil, newConfigError("cannot place %d food in %d free cells", foodCount, grid.NumFreeCells())
	}
	for i := 0; i < foodCount; i++ {
		grid.spawnFood()
	}

	return grid, nil
}

func (grid *GridState) Height() int {
	return grid.height
}

func (grid *GridState) Width() int {
	return grid.width
}

func (grid *GridState) Rand() *rand.Rand {
	return grid.rand
}

func (grid *GridState) Direction() Direction {
	return grid.direction
}

func (grid *GridState) Len() int {
	return grid.body.Len()
}

func (grid *GridState) Head() Cell {
	return grid.body.Back().(Cell)
}

func (grid *GridState) Tail() Cell {
	return grid.body.Front().(Cell)
}

// Body returns the snake cells ordered from tail to head
func (grid *GridState) Body() []Cell {
	cells := make([]Cell, grid.body.Len())
	for i := range cells {
		cells[i] = grid.body.At(i).(Cell)
	}
	return cells
}

// Food returns the food cells sorted by row, then column
func (grid *GridState) Food() []Cell {
	cells := grid.foodCells.Slice()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

func (grid *GridState) FoodCount() int {
	return grid.foodCells.Len()
}

func (grid *GridState) IsSnake(cell Cell) bool {
	return grid.snakeCells.Contains(cell)
}

func (grid *GridState) IsFood(cell Cell) bool {
	return grid.foodCells.Contains(cell)
}

// InBounds reports whether the cell lies in the interior
func (grid *GridState) InBounds(cell Cell) bool {
	return cell.Row > 0 && cell.Row < grid.height && cell.Col > 0 && cell.Col < grid.width
}

// IsFree reports whether the cell is interior and holds neither snake nor food
func (grid *GridState) IsFree(cell Cell) bool {
	return grid.InBounds(cell) && !grid.IsSnake(cell) && !grid.IsFood(cell)
}

func (grid *GridState) NumFreeCells() int {
	interior := (grid.height - 1) * (grid.width - 1)
	return interior - grid.snakeCells.Len() - grid.foodCells.Len()
}

// Ended reports whether Advance has returned a terminal result
func (grid *GridState) Ended() bool {
	return grid.ended
}

// Changes returns the cells whose occupancy changed since the previous call,
// in the order they changed, and resets the list.
func (grid *GridState) Changes() []Cell {
	changes := grid.changes
	grid.changes = nil
	return changes
}

// Glyph returns the character a cell should currently be drawn with
func (grid *GridState) Glyph(cell Cell) rune {
	switch {
	case grid.IsSnake(cell):
		return GlyphSnake
	case grid.IsFood(cell):
		return GlyphFood
	default:
		return GlyphEmpty
	}
}

// Advance moves the snake one cell. A requested direction is taken unless it
// is the reverse of the current one; DirNone continues straight. The heading
// only changes when the snake actually moves. Once a terminal result has been
// returned, the grid is frozen and every later call returns that same result.
func (grid *GridState) Advance(requested Direction) StepResult {
	if grid.ended {
		return grid.result
	}

	dir := grid.direction
	if requested != DirNone && requested != dir.Opposite() {
		dir = requested
	}

	newHead := grid.Head().Step(dir)

	if !grid.InBounds(newHead) {
		return grid.end(OutOfBounds)
	}

	switch {
	case grid.IsFood(newHead):
		grid.foodCells.Remove(newHead)
		grid.direction = dir
		grid.pushHead(newHead)
		grid.spawnFood()
		return Ate

	// The tail is still in place here, so stepping onto it collides
	case grid.IsSnake(newHead):
		return grid.end(SelfCollision)

	default:
		grid.direction = dir
		grid.pushHead(newHead)
		grid.popTail()
		return Moved
	}
}

func (grid *GridState) end(result StepResult) StepResult {
	grid.ended = true
	grid.result = result
	return result
}

func (grid *GridState) pushHead(cell Cell) {
	grid.body.PushBack(cell)
	grid.snakeCells.Add(cell)
	grid.markChanged(cell)
}

func (grid *GridState) popTail() {
	tail := grid.body.PopFront().(Cell)
	grid.snakeCells.Remove(tail)
	grid.markChanged(tail)
}

// spawnFood places one food cell uniformly at random on a free interior
// cell, redrawing on collision. It is a no-op when the interior is full.
func (grid *GridState) spawnFood() bool {
	if grid.NumFreeCells() <= 0 {
		return false
	}

	for {
		cell := Cell{
			Row: 1 + grid.rand.Intn(grid.height-1),
			Col: 1 + grid.rand.Intn(grid.width-1),
		}
		if grid.IsFree(cell) {
			grid.foodCells.Add(cell)
			grid.markChanged(cell)
			return true
		}
	}
}

func (grid *GridState) markChanged(cell Cell) {
	grid.changes = append(grid.changes, cell)
}
