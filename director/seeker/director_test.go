package seeker

import (
	"math/rand"
	"testing"

	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/game"
)

func createDirector(t *testing.T, snapshot game.GridSnapshot) (*Director, *game.GridState) {
	t.Helper()
	grid, err := snapshot.CreateGrid(rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	director := &Director{}
	director.Init(grid)
	return director, grid
}

func TestActHeadsForFood(t *testing.T) {
	director, _ := createDirector(t, game.GridSnapshot{
		Height:    10,
		Width:     10,
		Direction: game.DirRight,
		Body:      []game.Cell{{Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3}},
		Food:      []game.Cell{{Row: 2, Col: 3}, {Row: 9, Col: 9}},
	})

	if dir := director.Act(); dir != game.DirUp {
		t.Errorf("act=%v want=up", dir)
	}
}

func TestActAvoidsDeadEnd(t *testing.T) {
	// Food sits in a two-cell pocket; entering it would trap a four-cell snake
	director, _ := createDirector(t, game.GridSnapshot{
		Height:    6,
		Width:     10,
		Direction: game.DirUp,
		Body:      []game.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 1, Col: 3}},
		Food:      []game.Cell{{Row: 1, Col: 1}},
	})

	if dir := director.Act(); dir != game.DirRight {
		t.Errorf("act=%v want=right", dir)
	}
}

func TestActWithoutFoodStaysSafe(t *testing.T) {
	director, grid := createDirector(t, game.GridSnapshot{
		Height:    10,
		Width:     10,
		Direction: game.DirRight,
		Body:      []game.Cell{{Row: 1, Col: 6}, {Row: 1, Col: 7}, {Row: 1, Col: 8}, {Row: 1, Col: 9}},
	})

	dir := director.Act()
	safe := random.SafeDirections(grid)
	if len(safe) != 1 || dir != safe[0] {
		t.Errorf("act=%v safe=%v", dir, safe)
	}
}

func TestDirectorEatsFood(t *testing.T) {
	grid, err := game.NewGridState(12, 20, 3, 5, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatal(err)
	}
	director := &Director{}
	director.Init(grid)

	for i := 0; i < 400 && !grid.Ended(); i++ {
		grid.Advance(director.Act())
	}
	director.End()

	if grid.Len() <= 3 {
		t.Errorf("seeker never ate: len=%d", grid.Len())
	}
}
