package game

import "time"

type Direction int
type StepResult int
type GameStatus int
type EndReason int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var Directions = []Direction{
	DirUp,
	DirDown,
	DirLeft,
	DirRight,
}

const (
	Moved StepResult = iota
	Ate
	OutOfBounds
	SelfCollision
)

const (
	Playing GameStatus = iota
	Paused
	GameOver
)

const (
	NotEnded EndReason = iota
	HitWall
	HitSelf
	Quit
	Won
)

const (
	GlyphSnake = '█'
	GlyphFood  = '●'
	GlyphEmpty = ' '
)

const (
	DefaultHeight         = 29
	DefaultWidth          = 79
	DefaultInitialLength  = 10
	DefaultFoodCount      = 5
	DefaultScoreIncrement = 1
	DefaultEndDelay       = 2 * time.Second
)

var directionNames = map[Direction]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (dir Direction) String() string {
	return directionNames[dir]
}

// Delta returns the (row, col) offset of one step in this direction
func (dir Direction) Delta() (int, int) {
	switch dir {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (dir Direction) Opposite() Direction {
	switch dir {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func ParseDirection(name string) (Direction, bool) {
	for dir, dirName := range directionNames {
		if dirName == name {
			return dir, true
		}
	}
	return DirNone, false
}

func (dir Direction) MarshalYAML() (interface{}, error) {
	return dir.String(), nil
}

func (dir *Direction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, ok := ParseDirection(name)
	if !ok {
		return newConfigError("unknown direction %q", name)
	}
	*dir = parsed
	return nil
}

func (result StepResult) String() string {
	switch result {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case OutOfBounds:
		return "out of bounds"
	case SelfCollision:
		return "self collision"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the result ends the game
func (result StepResult) IsTerminal() bool {
	return result == OutOfBounds || result == SelfCollision
}

func (status GameStatus) String() string {
	switch status {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

func (reason EndReason) String() string {
	switch reason {
	case NotEnded:
		return "not ended"
	case HitWall:
		return "hit wall"
	case HitSelf:
		return "hit self"
	case Quit:
		return "quit"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
