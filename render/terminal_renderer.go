package render

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
)

// ScreenTerminal draws frames onto a tcell screen, centered on it
type ScreenTerminal struct {
	screen  tcell.Screen
	palette *Palette

	// screen size the origin was computed for
	width, height    int
	originX, originY int
}

// NewScreenTerminal creates a terminal writer for screen
func NewScreenTerminal(screen tcell.Screen, palette *Palette) *ScreenTerminal {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &ScreenTerminal{
		screen:  screen,
		palette: palette,
	}
}

// Origin returns the screen cell of the field's top-left corner
func (t *ScreenTerminal) Origin() (int, int) {
	return t.originX, t.originY
}

// Draw implements Terminal
// Only changed cells are written unless force is set or the screen was
// resized, in which case the field is re-centered and fully redrawn
func (t *ScreenTerminal) Draw(prev, cur core.Frame, force bool) int {
	if t.recenter(cur.Cols(), cur.Rows()) {
		force = true
	}

	var changes []CellChange
	if force {
		t.screen.SetStyle(t.palette.Background)
		t.screen.Clear()
		changes = All(cur)
	} else {
		changes = Diff(prev, cur)
	}

	for _, c := range changes {
		t.screen.SetContent(t.originX+c.X, t.originY+c.Y, c.Glyph, nil, t.palette.Style(c.Glyph))
	}

	if force {
		t.screen.Sync()
	} else {
		t.screen.Show()
	}
	return len(changes)
}

// recenter tracks the screen size and reports whether it changed
func (t *ScreenTerminal) recenter(cols, rows int) bool {
	w, h := t.screen.Size()
	if w == t.width && h == t.height {
		return false
	}
	t.width, t.height = w, h
	t.originX = max((w-cols)/2, 0)
	t.originY = max((h-rows)/2, 0)
	if cols > w || rows > h {
		log.Printf("screen %dx%d smaller than field %dx%d, drawing clipped", w, h, cols, rows)
	}
	return true
}
