package game

import "github.com/gammazero/deque"

// ReachableArea counts the interior cells reachable from start without
// crossing the snake, stopping once limit cells have been found (limit <= 0
// means no limit). Food is passable. The start cell itself must be passable
// to be counted.
func (grid *GridState) ReachableArea(start Cell, limit int) int {
	passable := func(cell Cell) bool {
		return grid.InBounds(cell) && !grid.IsSnake(cell)
	}
	if !passable(start) {
		return 0
	}

	visited := map[Cell]struct{}{start: {}}
	var visitQueue deque.Deque
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		if limit > 0 && len(visited) >= limit {
			return limit
		}

		cell := visitQueue.PopFront().(Cell)
		for _, neighbor := range cell.Neighbors() {
			if _, alreadyVisited := visited[neighbor]; alreadyVisited {
				continue
			}
			if !passable(neighbor) {
				continue
			}
			visited[neighbor] = struct{}{}
			visitQueue.PushBack(neighbor)
		}
	}

	if limit > 0 && len(visited) > limit {
		return limit
	}
	return len(visited)
}
