package game

import (
	"io/ioutil"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// GridSnapshot is a serializable layout of a grid: its bounds, the snake
// body from tail to head, its heading and the food cells.
type GridSnapshot struct {
	Seed      int64     `yaml:"seed"`
	Height    int       `yaml:"height"`
	Width     int       `yaml:"width"`
	Direction Direction `yaml:"direction"`
	Body      []Cell    `yaml:"body,flow"`
	Food      []Cell    `yaml:"food,flow"`
}

func (grid *GridState) snapshot() *GridSnapshot {
	return &GridSnapshot{
		Height:    grid.height,
		Width:     grid.width,
		Direction: grid.direction,
		Body:      grid.Body(),
		Food:      grid.Food(),
	}
}

func (snapshot *GridSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Render draws the snapshot as text, border included: '#' border, 'o' body,
// '@' head, '*' food, '.' empty.
func (snapshot *GridSnapshot) Render() string {
	rows := make([][]byte, snapshot.Height+1)
	for row := range rows {
		rows[row] = []byte(strings.Repeat(".", snapshot.Width+1))
		for col := range rows[row] {
			if row == 0 || row == snapshot.Height || col == 0 || col == snapshot.Width {
				rows[row][col] = '#'
			}
		}
	}

	put := func(cell Cell, c byte) {
		if cell.Row >= 0 && cell.Row <= snapshot.Height && cell.Col >= 0 && cell.Col <= snapshot.Width {
			rows[cell.Row][cell.Col] = c
		}
	}
	for _, cell := range snapshot.Food {
		put(cell, '*')
	}
	for i, cell := range snapshot.Body {
		if i == len(snapshot.Body)-1 {
			put(cell, '@')
		} else {
			put(cell, 'o')
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// CreateGrid builds a grid from the snapshot. Food listed in the snapshot is
// placed as is; no extra food is spawned. The heading follows from the last
// two body cells; a stated direction must agree with it. A single-cell snake
// takes the stated direction, or right when none is given.
func (snapshot *GridSnapshot) CreateGrid(rng *rand.Rand) (*GridState, error) {
	if snapshot.Height < 3 || snapshot.Width < 3 {
		return nil, newConfigError("snapshot grid of %dx%d has no interior", snapshot.Height, snapshot.Width)
	}
	if len(snapshot.Body) == 0 {
		return nil, newConfigError("snapshot has no snake")
	}

	grid := newEmptyGrid(snapshot.Height, snapshot.Width, rng)

	for _, cell := range snapshot.Body {
		if !grid.InBounds(cell) {
			return nil, newConfigError("snake cell %v is outside the interior", cell)
		}
		if grid.IsSnake(cell) {
			return nil, newConfigError("snake cell %v appears twice", cell)
		}
		if grid.Len() > 0 && grid.Head().Distance(cell) != 1 {
			return nil, newConfigError("snake cell %v does not touch %v", cell, grid.Head())
		}
		grid.pushHead(cell)
	}

	if grid.Len() >= 2 {
		neck := grid.body.At(grid.Len() - 2).(Cell)
		for _, dir := range Directions {
			if neck.Step(dir) == grid.Head() {
				grid.direction = dir
			}
		}
	}
	if snapshot.Direction != DirNone && snapshot.Direction != grid.direction {
		if grid.Len() >= 2 {
			return nil, newConfigError("snake heading %v disagrees with its body, which heads %v", snapshot.Direction, grid.direction)
		}
		grid.direction = snapshot.Direction
	}

	for _, cell := range snapshot.Food {
		if !grid.InBounds(cell) {
			return nil, newConfigError("food cell %v is outside the interior", cell)
		}
		if grid.IsSnake(cell) || grid.IsFood(cell) {
			return nil, newConfigError("food cell %v is already occupied", cell)
		}
		grid.foodCells.Add(cell)
		grid.markChanged(cell)
	}

	return grid, nil
}

func LoadSnapshot(in string) (*GridSnapshot, error) {
	var snapshot GridSnapshot
	if err := yaml.UnmarshalStrict([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*GridSnapshot, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}
	snapshot, err := LoadSnapshot(string(in))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing snapshot %s", path)
	}
	return snapshot, nil
}
