package render

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/status"
)

func TestDiff(t *testing.T) {
	prev := core.NewFrame(5, 3)
	prev.Set(1, 1, 'x')
	prev.Set(4, 2, 'A')

	cur := core.NewFrame(5, 3)
	cur.Set(2, 1, 'x')
	cur.Set(4, 2, 'A')

	changes := Diff(prev, cur)
	want := []CellChange{
		{X: 1, Y: 1, Glyph: core.Blank},
		{X: 2, Y: 1, Glyph: 'x'},
	}
	if len(changes) != len(want) {
		t.Fatalf("Expected %d changes, got %d: %v", len(want), len(changes), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("Change %d: expected %+v, got %+v", i, want[i], changes[i])
		}
	}

	if got := Diff(cur, cur); len(got) != 0 {
		t.Errorf("Expected no changes for identical frames, got %d", len(got))
	}
}

func TestDiffSizeMismatch(t *testing.T) {
	prev := core.NewFrame(2, 2)
	cur := core.NewFrame(3, 2)

	if got := len(Diff(prev, cur)); got != 6 {
		t.Errorf("Expected full redraw of 6 cells, got %d", got)
	}
}

// drawCall records one Terminal.Draw invocation
type drawCall struct {
	changes []CellChange
	force   bool
}

type recordingTerminal struct {
	mu    sync.Mutex
	calls []drawCall
}

func (r *recordingTerminal) Draw(prev, cur core.Frame, force bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changes := Diff(prev, cur)
	if force {
		changes = All(cur)
	}
	r.calls = append(r.calls, drawCall{changes: changes, force: force})
	return len(changes)
}

func TestPipelineRendersInOrderAndStopsOnClose(t *testing.T) {
	term := &recordingTerminal{}
	frames := make(chan core.Frame, 4)
	metrics := status.NewRegistry()
	p := NewPipeline(term, 4, 2, frames, metrics)
	p.Start()

	f1 := core.NewFrame(4, 2)
	f1.Set(0, 0, 'a')
	f2 := core.NewFrame(4, 2)
	f2.Set(1, 0, 'b')

	frames <- f1
	frames <- f2
	close(frames)

	waited := make(chan struct{})
	go func() {
		p.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		t.Fatal("Pipeline did not exit after channel close")
	}

	if len(term.calls) != 3 {
		t.Fatalf("Expected baseline plus 2 draws, got %d", len(term.calls))
	}
	if !term.calls[0].force {
		t.Error("Expected forced baseline draw first")
	}
	for _, c := range term.calls[0].changes {
		if c.Glyph != core.Blank {
			t.Errorf("Expected blank baseline, got %q at (%d,%d)", c.Glyph, c.X, c.Y)
		}
	}
	if term.calls[1].force || len(term.calls[1].changes) != 1 || term.calls[1].changes[0].Glyph != 'a' {
		t.Errorf("Expected diff draw of 'a', got %+v", term.calls[1])
	}
	// f2 is diffed against f1, not against the blank baseline
	if len(term.calls[2].changes) != 2 {
		t.Errorf("Expected 2 changed cells between frames, got %+v", term.calls[2].changes)
	}
	if p.Rendered() != 2 {
		t.Errorf("Expected 2 rendered frames, got %d", p.Rendered())
	}
	if got := metrics.Snapshot()[MetricCellsChanged]; got != 3 {
		t.Errorf("Expected 3 changed cells counted, got %d", got)
	}
}

type panickingTerminal struct{}

func (panickingTerminal) Draw(prev, cur core.Frame, force bool) int {
	if !force {
		panic("boom")
	}
	return 0
}

func TestPipelineCrashHandler(t *testing.T) {
	frames := make(chan core.Frame, 1)
	p := NewPipeline(panickingTerminal{}, 2, 2, frames, nil)

	var got any
	p.SetCrashHandler(func(r any) { got = r })
	p.Start()

	frames <- core.NewFrame(2, 2)
	p.Wait()

	if got != "boom" {
		t.Errorf("Expected recovered panic \"boom\", got %v", got)
	}
}

func TestScreenTerminalDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(15, 7)

	term := NewScreenTerminal(screen, nil)

	blank := core.NewFrame(5, 5)
	if n := term.Draw(blank, blank, true); n != 25 {
		t.Errorf("Expected forced draw to write 25 cells, got %d", n)
	}
	if x, y := term.Origin(); x != 5 || y != 1 {
		t.Fatalf("Expected field centered at (5,1), got (%d,%d)", x, y)
	}

	cur := core.NewFrame(5, 5)
	cur.Set(2, 4, parameter.GlyphPlayer)
	cur.Set(3, 0, parameter.GlyphInvader)
	if n := term.Draw(blank, cur, false); n != 2 {
		t.Errorf("Expected 2 cells written, got %d", n)
	}

	r, _, style, _ := screen.GetContent(7, 5)
	if r != parameter.GlyphPlayer {
		t.Errorf("Expected player glyph at offset cell, got %q", r)
	}
	if style != DefaultPalette().Style(parameter.GlyphPlayer) {
		t.Error("Expected player style from palette")
	}
	if r, _, _, _ := screen.GetContent(8, 1); r != parameter.GlyphInvader {
		t.Errorf("Expected invader glyph, got %q", r)
	}

	// Moving the player clears its old cell
	next := core.NewFrame(5, 5)
	next.Set(3, 4, parameter.GlyphPlayer)
	term.Draw(cur, next, false)
	if r, _, _, _ := screen.GetContent(7, 5); r != core.Blank {
		t.Errorf("Expected old player cell cleared, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(8, 1); r != core.Blank {
		t.Errorf("Expected vanished invader cleared, got %q", r)
	}
}

// TestScreenTerminalRecentersOnResize verifies a resize moves the field and redraws it whole
func TestScreenTerminalRecentersOnResize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(15, 7)

	term := NewScreenTerminal(screen, nil)
	blank := core.NewFrame(5, 5)
	term.Draw(blank, blank, true)

	cur := core.NewFrame(5, 5)
	cur.Set(0, 0, parameter.GlyphInvader)
	term.Draw(blank, cur, false)

	screen.SetSize(25, 11)
	// Unchanged frame, yet every cell is rewritten at the new origin
	if n := term.Draw(cur, cur, false); n != 25 {
		t.Errorf("Expected full redraw of 25 cells after resize, got %d", n)
	}
	if x, y := term.Origin(); x != 10 || y != 3 {
		t.Fatalf("Expected field centered at (10,3), got (%d,%d)", x, y)
	}
	if r, _, _, _ := screen.GetContent(10, 3); r != parameter.GlyphInvader {
		t.Errorf("Expected invader at the new origin, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(5, 1); r != core.Blank {
		t.Errorf("Expected old origin cleared, got %q", r)
	}

	// A screen smaller than the field pins the origin to the corner
	screen.SetSize(4, 3)
	term.Draw(cur, cur, false)
	if x, y := term.Origin(); x != 0 || y != 0 {
		t.Errorf("Expected clipped field at (0,0), got (%d,%d)", x, y)
	}
}
