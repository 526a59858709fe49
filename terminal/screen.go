package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the process is not attached to a tty
var ErrNotTerminal = errors.New("not a terminal")

// Escape sequences used when tcell cannot clean up after itself
var (
	csiRIS           = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// saved holds the tty mode captured before the screen switched to raw mode
var saved struct {
	mu    sync.Mutex
	fd    int
	state *term.State
}

// IsInteractive reports whether f is a terminal
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Session owns the tcell screen for the lifetime of a game
type Session struct {
	Screen tcell.Screen
	once   sync.Once
}

// Open enters the alternate screen with the cursor hidden
// The tty mode is captured first so EmergencyReset can restore it
func Open(in *os.File) (*Session, error) {
	if !IsInteractive(in) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	captureState(int(in.Fd()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return OpenScreen(screen)
}

// OpenScreen initializes an existing screen, e.g. a simulation screen
func OpenScreen(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Session{Screen: screen}, nil
}

// Close leaves the alternate screen and restores the tty; safe to call twice
func (s *Session) Close() {
	s.once.Do(func() {
		s.Screen.ShowCursor(0, 0)
		s.Screen.Fini()
	})
}

// Size returns the current screen dimensions
func (s *Session) Size() (int, int) {
	return s.Screen.Size()
}

func captureState(fd int) {
	state, err := term.GetState(fd)
	if err != nil {
		return
	}
	saved.mu.Lock()
	saved.fd, saved.state = fd, state
	saved.mu.Unlock()
}

// EmergencyReset restores a sane terminal without going through tcell
// Used from panic handlers where the screen may be half torn down
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	saved.mu.Lock()
	fd, state := saved.fd, saved.state
	saved.mu.Unlock()
	if state != nil && term.Restore(fd, state) == nil {
		return
	}

	// Best-effort; ignore errors in crash context
	resetTerminalMode()
}
