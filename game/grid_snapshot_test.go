package game

import (
	"errors"
	"strings"
	"testing"
)

const testSnapshotYAML = `
seed: 99
height: 4
width: 5
direction: right
body: [{row: 2, col: 1}, {row: 2, col: 2}]
food: [{row: 1, col: 3}]
`

func TestLoadSnapshotCreatesGrid(t *testing.T) {
	snapshot, err := LoadSnapshot(testSnapshotYAML)
	if err != nil {
		t.Fatal(err)
	}
	if snapshot.Seed != 99 || snapshot.Direction != DirRight {
		t.Fatalf("seed=%d direction=%v", snapshot.Seed, snapshot.Direction)
	}

	grid, err := snapshot.CreateGrid(newTestRand())
	if err != nil {
		t.Fatal(err)
	}
	if grid.Head() != (Cell{2, 2}) || grid.Tail() != (Cell{2, 1}) {
		t.Errorf("head=%v tail=%v", grid.Head(), grid.Tail())
	}
	if !grid.IsFood(Cell{1, 3}) || grid.FoodCount() != 1 {
		t.Errorf("food=%v", grid.Food())
	}
	if len(grid.Changes()) != 3 {
		t.Errorf("snapshot cells should all be marked for drawing")
	}
	checkInvariants(t, grid)
}

func TestSnapshotRender(t *testing.T) {
	snapshot, err := LoadSnapshot(testSnapshotYAML)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"######",
		"#..*.#",
		"#o@..#",
		"#....#",
		"######",
	}, "\n")
	if got := snapshot.Render(); got != want {
		t.Errorf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnapshotOfPlayedGridRestores(t *testing.T) {
	grid := gridFrom(t, GridSnapshot{
		Height:    10,
		Width:     10,
		Direction: DirRight,
		Body:      []Cell{{4, 2}, {4, 3}, {4, 4}},
		Food:      []Cell{{5, 4}, {7, 7}},
	})
	grid.Advance(DirDown)
	grid.Advance(DirLeft)

	loaded, err := LoadSnapshot(grid.snapshot().Serialize())
	if err != nil {
		t.Fatal(err)
	}
	restored, err := loaded.CreateGrid(newTestRand())
	if err != nil {
		t.Fatal(err)
	}

	if !cellsEqual(restored.Body(), grid.Body()) {
		t.Errorf("body=%v want=%v", restored.Body(), grid.Body())
	}
	if !cellsEqual(restored.Food(), grid.Food()) {
		t.Errorf("food=%v want=%v", restored.Food(), grid.Food())
	}
	if restored.Direction() != DirLeft {
		t.Errorf("direction=%v want=left", restored.Direction())
	}
}

func TestSnapshotCreateGridRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name     string
		snapshot GridSnapshot
	}{
		{"no interior", GridSnapshot{Height: 2, Width: 10, Body: []Cell{{1, 1}}}},
		{"no snake", GridSnapshot{Height: 10, Width: 10}},
		{"snake on border", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{0, 1}}}},
		{"snake broken", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{1, 1}, {1, 3}}}},
		{"direction into neck", GridSnapshot{Height: 10, Width: 10, Direction: DirLeft, Body: []Cell{{5, 1}, {5, 2}, {5, 3}}}},
		{"direction across body", GridSnapshot{Height: 10, Width: 10, Direction: DirUp, Body: []Cell{{5, 1}, {5, 2}, {5, 3}}}},
		{"snake overlaps itself", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{1, 1}, {1, 2}, {1, 1}}}},
		{"food on snake", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{1, 1}}, Food: []Cell{{1, 1}}}},
		{"food twice", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{1, 1}}, Food: []Cell{{3, 3}, {3, 3}}}},
		{"food outside", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{1, 1}}, Food: []Cell{{3, 10}}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.snapshot.CreateGrid(newTestRand())
			var configErr *ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("err=%v want ConfigError", err)
			}
		})
	}
}

func TestLoadSnapshotRejectsUnknownDirection(t *testing.T) {
	if _, err := LoadSnapshot("direction: sideways\n"); err == nil {
		t.Errorf("expected error for unknown direction")
	}
}

func TestLoadSnapshotRejectsUnknownKeys(t *testing.T) {
	if _, err := LoadSnapshot("dirction: up\n"); err == nil {
		t.Errorf("expected error for misspelled key")
	}
}

func TestSnapshotHeadingFollowsBody(t *testing.T) {
	tests := []struct {
		name     string
		snapshot GridSnapshot
		want     Direction
	}{
		{"unstated left", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{5, 3}, {5, 2}, {5, 1}}}, DirLeft},
		{"unstated up", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{5, 3}, {4, 3}}}, DirUp},
		{"stated and agreeing", GridSnapshot{Height: 10, Width: 10, Direction: DirDown, Body: []Cell{{2, 3}, {3, 3}}}, DirDown},
		{"single cell unstated", GridSnapshot{Height: 10, Width: 10, Body: []Cell{{5, 5}}}, DirRight},
		{"single cell stated", GridSnapshot{Height: 10, Width: 10, Direction: DirUp, Body: []Cell{{5, 5}}}, DirUp},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid, err := test.snapshot.CreateGrid(newTestRand())
			if err != nil {
				t.Fatal(err)
			}
			if grid.Direction() != test.want {
				t.Errorf("direction=%v want=%v", grid.Direction(), test.want)
			}
			if grid.Height() != 10 || grid.Width() != 10 {
				t.Errorf("size=%dx%d want=10x10", grid.Height(), grid.Width())
			}

			// No request can turn the snake back into its neck
			for _, dir := range Directions {
				turned := gridFrom(t, test.snapshot)
				if result := turned.Advance(dir); result == SelfCollision {
					t.Errorf("advance %v collided with the neck", dir)
				}
			}
		})
	}
}
