package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// eventQueueSize bounds key events buffered between polls
const eventQueueSize = 256

// ScreenSource polls a tcell screen without blocking the game loop
// A background goroutine forwards screen events into a buffered queue
type ScreenSource struct {
	screen tcell.Screen
	keys   *KeyTable
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// NewScreenSource starts forwarding events from screen
func NewScreenSource(screen tcell.Screen, keys *KeyTable) *ScreenSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	s := &ScreenSource{
		screen: screen,
		keys:   keys,
		events: make(chan tcell.Event, eventQueueSize),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.forward()
	return s
}

func (s *ScreenSource) forward() {
	defer s.wg.Done()
	for {
		ev := s.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Poll implements Source
// Unbound keys are skipped; resize events resync the screen
func (s *ScreenSource) Poll() Command {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if c, ok := s.keys.Lookup(ev); ok {
					return c
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return CommandNone
		}
	}
}

// Close stops forwarding; the screen must be finalized for the poller to exit
func (s *ScreenSource) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Wait blocks until the forwarding goroutine exits
func (s *ScreenSource) Wait() {
	s.wg.Wait()
}
