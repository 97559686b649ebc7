package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// KeyCode identifies a key the game reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	// KeyRune is a printable character, see Key.Rune.
	KeyRune
	// KeyClosed is reported when no more input will arrive.
	KeyClosed
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Alt  bool
	Rune rune
}

// Renderer draws a frame. Cells are addressed in map coordinates.
type Renderer interface {
	Clear()
	SetBackground(x, y int, c tcell.Color)
	DrawGlyph(x, y int, glyph rune, c tcell.Color)
	Flush()
	ToggleFullscreen()
	// Closed reports whether the window or terminal has gone away.
	Closed() bool
	Close()
}

// InputSource blocks until the next key press.
type InputSource interface {
	WaitForKey(ctx context.Context) Key
}
