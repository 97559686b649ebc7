// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/game"
)

// Screen wraps tcell.Screen and serves as both the game's renderer and
// its input source.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	mu     sync.Mutex
	closed bool
	fini   sync.Once
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go scr.pump()
	return scr, nil
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// WaitForKey blocks until a key is pressed. Resize events trigger a full
// redraw and are otherwise skipped. KeyClosed is returned once the screen
// has gone away or ctx is done.
func (s *Screen) WaitForKey(ctx context.Context) game.Key {
	for {
		select {
		case <-ctx.Done():
			return game.Key{Code: game.KeyClosed}
		case ev, ok := <-s.events:
			if !ok {
				s.markClosed()
				return game.Key{Code: game.KeyClosed}
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return translateKey(ev)
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

// translateKey maps a tcell key event onto the game's key set.
func translateKey(ev *tcell.EventKey) game.Key {
	k := game.Key{Alt: ev.Modifiers()&tcell.ModAlt != 0}
	switch ev.Key() {
	case tcell.KeyUp:
		k.Code = game.KeyUp
	case tcell.KeyDown:
		k.Code = game.KeyDown
	case tcell.KeyLeft:
		k.Code = game.KeyLeft
	case tcell.KeyRight:
		k.Code = game.KeyRight
	case tcell.KeyEnter:
		k.Code = game.KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.Code = game.KeyEscape
	case tcell.KeyRune:
		k.Code = game.KeyRune
		k.Rune = ev.Rune()
	default:
		k.Code = game.KeyOther
	}
	return k
}

// ToggleFullscreen forces a complete redraw. A terminal cannot resize
// itself, so this is all fullscreen can mean here.
func (s *Screen) ToggleFullscreen() {
	s.screen.Sync()
}

// Closed reports whether the screen has been finalized.
func (s *Screen) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Screen) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Close finalizes the screen and restores terminal state. It is safe to
// call more than once.
func (s *Screen) Close() {
	s.fini.Do(func() {
		s.markClosed()
		close(s.quit)
		s.screen.Fini()
	})
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Fits reports whether a map of the given size can be drawn without
// clipping.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.Size()
	return w >= width && h >= height
}
