package game

type Key int
type Command int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInterrupt
	KeyOther
)

const (
	CommandIgnore Command = iota
	CommandMove
	CommandPause
	CommandQuit
)

const (
	RunePause = ' '
	RuneQuit  = 'q'
)

// KeyEvent is a key press, independent of the terminal library that
// produced it. Rune is only meaningful for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

var keyDirections = map[Key]Direction{
	KeyUp:    DirUp,
	KeyDown:  DirDown,
	KeyLeft:  DirLeft,
	KeyRight: DirRight,
}

var runeDirections = map[rune]Direction{
	'k': DirUp,
	'j': DirDown,
	'h': DirLeft,
	'l': DirRight,
}

// MapKey translates a key press into a command. Only CommandMove carries a
// direction.
func MapKey(event KeyEvent) (Command, Direction) {
	switch event.Key {
	case KeyRune:
		switch event.Rune {
		case RunePause:
			return CommandPause, DirNone
		case RuneQuit:
			return CommandQuit, DirNone
		}
		if dir, ok := runeDirections[event.Rune]; ok {
			return CommandMove, dir
		}
	case KeyInterrupt:
		return CommandQuit, DirNone
	default:
		if dir, ok := keyDirections[event.Key]; ok {
			return CommandMove, dir
		}
	}
	return CommandIgnore, DirNone
}
