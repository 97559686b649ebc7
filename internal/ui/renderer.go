package ui

import "github.com/gdamore/tcell/v2"

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// SetBackground paints the background of a cell and blanks its glyph.
func (s *Screen) SetBackground(x, y int, c tcell.Color) {
	s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(c))
}

// DrawGlyph draws a character in the given color, keeping the cell's
// current background.
func (s *Screen) DrawGlyph(x, y int, glyph rune, c tcell.Color) {
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, glyph, nil, style.Foreground(c))
}

// Flush pushes the buffered frame to the terminal.
func (s *Screen) Flush() {
	s.screen.Show()
}
