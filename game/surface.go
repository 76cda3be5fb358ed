package game

import "time"

// Surface is the terminal the controller renders to and reads keys from.
// Rows and columns passed to it are relative to the play window, whose
// border sits on row 0/height and column 0/width.
type Surface interface {
	/**
	 * Total rows and columns available
	 */
	Size() (rows, cols int)

	/**
	 * Position the play window for a grid of the given bounds and draw its border
	 */
	Layout(height, width int)

	DrawGlyph(cell Cell, glyph rune)
	DisplayScore(score int)
	DisplayLevel(level int)
	DisplayMessage(text string, row, col int)

	/**
	 * Flush pending drawing to the terminal
	 */
	Refresh()

	/**
	 * Next key press. When blocking is false and no key is pending, returns
	 * false immediately.
	 */
	ReadKey(blocking bool) (KeyEvent, bool)

	Sleep(d time.Duration)
}
