package term

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Session manages the terminal for the lifetime of the simulation: raw input
// mode, the alternate screen buffer and a hidden cursor on Enter, everything
// restored on Exit. Exit is idempotent so it can sit on multiple exit paths.
type Session struct {
	screen tcell.Screen
	active bool
}

func NewSession() *Session {
	return &Session{}
}

// Enter switches the terminal into raw mode and the alternate screen buffer
// and hides the cursor. Fails if the terminal does not support these modes.
func (s *Session) Enter() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[Enter] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[Enter] failed to initialize screen")
	}
	screen.HideCursor()

	s.screen = screen
	s.active = true
	return nil
}

// Exit restores the cursor, leaves the alternate screen and returns the
// terminal to cooked mode. Safe to call more than once.
func (s *Session) Exit() {
	if !s.active {
		return
	}
	s.active = false
	s.screen.Fini()
}

// Screen exposes the underlying tcell screen for rendering
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Size returns the current terminal dimensions
func (s *Session) Size() (cols, rows int) {
	return s.screen.Size()
}

// Resize requests a terminal resize to the given dimensions. Not every
// terminal honors the request; the simulation still runs either way.
func (s *Session) Resize(cols, rows int) {
	s.screen.SetSize(cols, rows)
}

// Events pumps screen events into a channel so the control loop can poll it
// without blocking. The goroutine ends when the screen is finalized and
// PollEvent returns nil.
func (s *Session) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// RecoverAndExit restores the terminal before a panic reaches the user, then
// reports the panic and stack to stderr and exits non-zero. Meant to be
// deferred right after a successful Enter.
func (s *Session) RecoverAndExit() {
	if r := recover(); r != nil {
		s.Exit()
		fmt.Fprintf(os.Stderr, "golife crashed: %v\n", r)
		fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
