package entities

import (
	"time"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// Invader is a single live member of the formation
type Invader struct {
	X, Y int
}

// Invaders is the descending formation
// Removed invaders are dropped from the live set rather than flagged
type Invaders struct {
	army      []Invader
	direction int
	descents  int
	timer     core.Timer
	tuning    parameter.Tuning
}

// NewInvaders builds the starting grid described by the tuning
func NewInvaders(t parameter.Tuning) *Invaders {
	army := make([]Invader, 0, t.FormationColumns*t.FormationRows)
	for row := 0; row < t.FormationRows; row++ {
		for col := 0; col < t.FormationColumns; col++ {
			army = append(army, Invader{
				X: t.FormationMarginX + col*t.FormationSpacing,
				Y: t.FormationTop + row*t.FormationSpacing,
			})
		}
	}
	return newInvaders(t, army)
}

// NewInvadersAt builds a formation from explicit positions
func NewInvadersAt(t parameter.Tuning, positions ...core.Point) *Invaders {
	army := make([]Invader, 0, len(positions))
	for _, p := range positions {
		army = append(army, Invader{X: p.X, Y: p.Y})
	}
	return newInvaders(t, army)
}

func newInvaders(t parameter.Tuning, army []Invader) *Invaders {
	return &Invaders{
		army:      army,
		direction: 1,
		timer:     core.NewTimer(t.MovePeriod(len(army))),
		tuning:    t,
	}
}

// Update steps the formation when its move timer elapses
// A step either shifts every invader sideways or, when any invader would
// leave the field, reverses direction and drops every invader one row
// Returns true if a step happened
func (f *Invaders) Update(delta time.Duration) bool {
	if len(f.army) == 0 {
		return false
	}

	f.timer.SetDuration(f.tuning.MovePeriod(len(f.army)))
	f.timer.Update(delta)
	if !f.timer.Ready() {
		return false
	}
	f.timer.Reset()

	if f.blocked() {
		f.direction = -f.direction
		f.descents++
		for i := range f.army {
			f.army[i].Y++
		}
		return true
	}

	for i := range f.army {
		f.army[i].X += f.direction
	}
	return true
}

// blocked reports whether a sideways step would push an invader off the field
func (f *Invaders) blocked() bool {
	for _, inv := range f.army {
		next := inv.X + f.direction
		if next < 0 || next >= f.tuning.Cols {
			return true
		}
	}
	return false
}

// KillInvaderAt removes the live invader at (x, y), if any
func (f *Invaders) KillInvaderAt(x, y int) bool {
	for i, inv := range f.army {
		if inv.X == x && inv.Y == y {
			f.army = append(f.army[:i], f.army[i+1:]...)
			return true
		}
	}
	return false
}

// AllKilled reports an empty live set
func (f *Invaders) AllKilled() bool {
	return len(f.army) == 0
}

// ReachedBottom reports whether any invader is on or below the player row
func (f *Invaders) ReachedBottom() bool {
	for _, inv := range f.army {
		if inv.Y >= f.tuning.PlayerRow() {
			return true
		}
	}
	return false
}

// At reports whether a live invader occupies (x, y)
func (f *Invaders) At(x, y int) bool {
	for _, inv := range f.army {
		if inv.X == x && inv.Y == y {
			return true
		}
	}
	return false
}

// Count returns the number of live invaders
func (f *Invaders) Count() int {
	return len(f.army)
}

// Live returns a copy of the live invaders
func (f *Invaders) Live() []Invader {
	out := make([]Invader, len(f.army))
	copy(out, f.army)
	return out
}

// Direction returns +1 when sweeping right, -1 when sweeping left
func (f *Invaders) Direction() int {
	return f.direction
}

// Descents returns how many rows the formation has dropped
func (f *Invaders) Descents() int {
	return f.descents
}

// MovePeriod returns the current step period
func (f *Invaders) MovePeriod() time.Duration {
	return f.tuning.MovePeriod(len(f.army))
}

// glyph alternates with move-timer progress
func (f *Invaders) glyph() rune {
	if f.timer.RemainingFraction() > 0.5 {
		return parameter.GlyphInvader
	}
	return parameter.GlyphInvaderAlt
}

// Draw implements core.Drawable
func (f *Invaders) Draw(fr *core.Frame) {
	g := f.glyph()
	for _, inv := range f.army {
		fr.Set(inv.X, inv.Y, g)
	}
}
