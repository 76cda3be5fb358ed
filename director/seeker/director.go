package seeker

import (
	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/game"
)

// Director steers toward the nearest food, refusing moves that would shut
// the snake into a region smaller than its own length. When no such move
// exists it heads for the largest open region instead.
type Director struct {
	grid *game.GridState
}

type actor func(safe []game.Direction) (game.Direction, bool)

func (director *Director) Init(grid *game.GridState) {
	director.grid = grid
}

func (director *Director) Act() game.Direction {
	safe := random.SafeDirections(director.grid)
	if len(safe) == 0 {
		return game.DirNone
	}

	actors := []actor{
		director.actTowardFood,
		director.actRoomiest,
	}
	for _, act := range actors {
		if dir, found := act(safe); found {
			return dir
		}
	}
	return safe[0]
}

func (director *Director) End() {
	director.grid = nil
}

func (director *Director) actTowardFood(safe []game.Direction) (game.Direction, bool) {
	grid := director.grid
	head := grid.Head()

	target, found := director.nearestFood(head)
	if !found {
		return game.DirNone, false
	}

	best := game.DirNone
	bestDistance := head.Distance(target)
	for _, dir := range safe {
		next := head.Step(dir)
		distance := next.Distance(target)
		if distance >= bestDistance {
			continue
		}
		if grid.ReachableArea(next, grid.Len()) < grid.Len() {
			continue
		}
		best, bestDistance = dir, distance
	}

	return best, best != game.DirNone
}

func (director *Director) actRoomiest(safe []game.Direction) (game.Direction, bool) {
	grid := director.grid
	head := grid.Head()

	bestArea := -1
	var roomiest []game.Direction
	for _, dir := range safe {
		area := grid.ReachableArea(head.Step(dir), 0)
		switch {
		case area > bestArea:
			bestArea = area
			roomiest = []game.Direction{dir}
		case area == bestArea:
			roomiest = append(roomiest, dir)
		}
	}

	if len(roomiest) == 0 {
		return game.DirNone, false
	}
	return roomiest[grid.Rand().Intn(len(roomiest))], true
}

func (director *Director) nearestFood(from game.Cell) (game.Cell, bool) {
	var nearest game.Cell
	found := false
	for _, food := range director.grid.Food() {
		if !found || from.Distance(food) < from.Distance(nearest) {
			nearest, found = food, true
		}
	}
	return nearest, found
}
