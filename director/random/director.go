package random

import (
	"github.com/they4kman/gosnake/game"
)

// Director turns the snake at random, choosing only among moves that do not
// end the game on the next tick.
type Director struct {
	grid *game.GridState
}

func (director *Director) Init(grid *game.GridState) {
	director.grid = grid
}

func (director *Director) Act() game.Direction {
	safe := SafeDirections(director.grid)
	if len(safe) == 0 {
		return game.DirNone
	}

	director.grid.Rand().Shuffle(len(safe), func(i, j int) {
		safe[i], safe[j] = safe[j], safe[i]
	})
	return safe[0]
}

func (director *Director) End() {
	director.grid = nil
}

// SafeDirections lists the directions, other than a reversal, whose next
// cell is interior and not snake.
func SafeDirections(grid *game.GridState) []game.Direction {
	head := grid.Head()
	reverse := grid.Direction().Opposite()

	safe := make([]game.Direction, 0, len(game.Directions))
	for _, dir := range game.Directions {
		if dir == reverse {
			continue
		}
		next := head.Step(dir)
		if grid.InBounds(next) && !grid.IsSnake(next) {
			safe = append(safe, dir)
		}
	}
	return safe
}
