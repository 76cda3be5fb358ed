package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/gosnake/game"
)

var _ game.Surface = (*Screen)(nil)

// Screen renders a game onto a tcell screen. The play window is centered in
// the terminal with the score line directly beneath it.
type Screen struct {
	screen tcell.Screen

	// Terminal position of the window's top-left border corner
	top, left     int
	height, width int

	windowStyle  tcell.Style
	statusStyle  tcell.Style
	messageStyle tcell.Style
}

// NewScreen takes over the terminal. Call Fini to give it back.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized tcell screen
func NewScreenFrom(s tcell.Screen) *Screen {
	s.HideCursor()
	return &Screen{
		screen:       s,
		windowStyle:  tcell.StyleDefault,
		statusStyle:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		messageStyle: tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true),
	}
}

func (screen *Screen) Fini() {
	screen.screen.Fini()
}

func (screen *Screen) Size() (rows, cols int) {
	cols, rows = screen.screen.Size()
	return rows, cols
}

func (screen *Screen) Layout(height, width int) {
	rows, cols := screen.Size()
	screen.height, screen.width = height, width
	screen.top = (rows - (height + 2)) / 2
	screen.left = (cols - (width + 1)) / 2

	screen.screen.SetStyle(screen.statusStyle)
	screen.screen.Clear()

	for row := 0; row <= height; row++ {
		for col := 0; col <= width; col++ {
			screen.set(row, col, game.GlyphEmpty, screen.windowStyle)
		}
	}
	screen.drawBorder()
}

func (screen *Screen) drawBorder() {
	for col := 1; col < screen.width; col++ {
		screen.set(0, col, tcell.RuneHLine, screen.windowStyle)
		screen.set(screen.height, col, tcell.RuneHLine, screen.windowStyle)
	}
	for row := 1; row < screen.height; row++ {
		screen.set(row, 0, tcell.RuneVLine, screen.windowStyle)
		screen.set(row, screen.width, tcell.RuneVLine, screen.windowStyle)
	}
	screen.set(0, 0, tcell.RuneULCorner, screen.windowStyle)
	screen.set(0, screen.width, tcell.RuneURCorner, screen.windowStyle)
	screen.set(screen.height, 0, tcell.RuneLLCorner, screen.windowStyle)
	screen.set(screen.height, screen.width, tcell.RuneLRCorner, screen.windowStyle)
}

func (screen *Screen) DrawGlyph(cell game.Cell, glyph rune) {
	screen.set(cell.Row, cell.Col, glyph, screen.windowStyle)
}

func (screen *Screen) DisplayScore(score int) {
	screen.drawText(screen.height+1, 1, fmt.Sprintf("Score: %d", score), screen.statusStyle)
}

func (screen *Screen) DisplayLevel(level int) {
	text := fmt.Sprintf("Level: %d", level)
	screen.drawText(screen.height+1, screen.width-len(text), text, screen.statusStyle)
}

func (screen *Screen) DisplayMessage(text string, row, col int) {
	screen.drawText(row, col, text, screen.messageStyle)
}

func (screen *Screen) Refresh() {
	screen.screen.Show()
}

// ReadKey returns the next key press. Resize events are absorbed; the
// layout is fixed for the session.
func (screen *Screen) ReadKey(blocking bool) (game.KeyEvent, bool) {
	for {
		if !blocking && !screen.screen.HasPendingEvent() {
			return game.KeyEvent{}, false
		}

		switch ev := screen.screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return game.KeyEvent{}, false
		case *tcell.EventKey:
			return translateKey(ev), true
		case *tcell.EventResize:
			screen.screen.Sync()
		}
	}
}

func (screen *Screen) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (screen *Screen) set(row, col int, r rune, style tcell.Style) {
	screen.screen.SetContent(screen.left+col, screen.top+row, r, nil, style)
}

func (screen *Screen) drawText(row, col int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.set(row, col+i, r, style)
	}
}

func translateKey(ev *tcell.EventKey) game.KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return game.KeyEvent{Key: game.KeyRune, Rune: ev.Rune()}
	case tcell.KeyUp:
		return game.KeyEvent{Key: game.KeyUp}
	case tcell.KeyDown:
		return game.KeyEvent{Key: game.KeyDown}
	case tcell.KeyLeft:
		return game.KeyEvent{Key: game.KeyLeft}
	case tcell.KeyRight:
		return game.KeyEvent{Key: game.KeyRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyEvent{Key: game.KeyInterrupt}
	default:
		return game.KeyEvent{Key: game.KeyOther}
	}
}
