package entities

import (
	"testing"
	"time"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// TestInvadersInitialGrid verifies the starting layout
func TestInvadersInitialGrid(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvaders(tuning)

	want := tuning.FormationColumns * tuning.FormationRows
	if f.Count() != want {
		t.Fatalf("Expected %d invaders, got %d", want, f.Count())
	}
	if !f.At(tuning.FormationMarginX, tuning.FormationTop) {
		t.Error("Expected an invader at the top-left grid slot")
	}
	if f.Direction() != 1 {
		t.Errorf("Expected initial direction +1, got %d", f.Direction())
	}
	if f.AllKilled() || f.ReachedBottom() {
		t.Error("Expected fresh formation to be neither killed nor at bottom")
	}
}

// TestInvadersUpdateWaitsForPeriod verifies movement cadence
func TestInvadersUpdateWaitsForPeriod(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvadersAt(tuning, core.Point{X: 5, Y: 3})
	period := f.MovePeriod()

	if f.Update(period - time.Millisecond) {
		t.Error("Expected no step before the period elapses")
	}
	if !f.Update(time.Millisecond) {
		t.Fatal("Expected a step once the period elapses")
	}
	if !f.At(6, 3) {
		t.Errorf("Expected invader shifted right to (6,3), got %+v", f.Live())
	}
}

// TestInvadersReverseAndDescend verifies edge contact drops the formation a row
func TestInvadersReverseAndDescend(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvadersAt(tuning,
		core.Point{X: tuning.Cols - 2, Y: 2},
		core.Point{X: tuning.Cols - 4, Y: 4},
	)
	period := f.MovePeriod()

	f.Update(period)
	if !f.At(tuning.Cols-1, 2) {
		t.Fatalf("Expected lead invader on last column, got %+v", f.Live())
	}

	if !f.Update(period) {
		t.Fatal("Expected descent to count as a step")
	}
	if f.Direction() != -1 {
		t.Errorf("Expected direction reversed to -1, got %d", f.Direction())
	}
	if f.Descents() != 1 {
		t.Errorf("Expected 1 descent, got %d", f.Descents())
	}
	if !f.At(tuning.Cols-1, 3) || !f.At(tuning.Cols-3, 5) {
		t.Errorf("Expected whole formation one row lower in place, got %+v", f.Live())
	}

	f.Update(period)
	if !f.At(tuning.Cols-2, 3) {
		t.Errorf("Expected sweep left after descent, got %+v", f.Live())
	}
}

// TestInvadersDescentMonotonic verifies rows never decrease across updates
func TestInvadersDescentMonotonic(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvaders(tuning)

	prev := f.Live()
	for i := 0; i < 500 && !f.ReachedBottom(); i++ {
		f.Update(tuning.MovePeriodMax)
		cur := f.Live()
		for j := range cur {
			if cur[j].Y < prev[j].Y {
				t.Fatalf("Invader %d rose from row %d to %d", j, prev[j].Y, cur[j].Y)
			}
			if cur[j].X < 0 || cur[j].X >= tuning.Cols {
				t.Fatalf("Invader %d left the field at column %d", j, cur[j].X)
			}
		}
		prev = cur
	}
}

// TestInvadersKillAt verifies removal and idempotence
func TestInvadersKillAt(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvadersAt(tuning, core.Point{X: 4, Y: 4}, core.Point{X: 6, Y: 4})

	if !f.KillInvaderAt(4, 4) {
		t.Fatal("Expected kill at occupied cell")
	}
	if f.At(4, 4) {
		t.Error("Expected killed invader absent from queries")
	}
	if f.KillInvaderAt(4, 4) || f.KillInvaderAt(4, 4) {
		t.Error("Expected repeated kill at empty cell to return false")
	}
	if f.Count() != 1 {
		t.Errorf("Expected 1 invader left, got %d", f.Count())
	}
}

// TestInvadersAllKilled verifies the win predicate tracks the live set
func TestInvadersAllKilled(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvadersAt(tuning, core.Point{X: 1, Y: 1})

	if f.AllKilled() {
		t.Error("Expected live formation not all killed")
	}
	f.KillInvaderAt(1, 1)
	if !f.AllKilled() {
		t.Error("Expected empty formation all killed")
	}
	if f.Update(time.Hour) {
		t.Error("Expected empty formation not to move")
	}
}

// TestInvadersReachedBottom covers the lose predicate boundary
func TestInvadersReachedBottom(t *testing.T) {
	tuning := parameter.DefaultTuning()
	tests := []struct {
		name string
		row  int
		want bool
	}{
		{"above player row", tuning.PlayerRow() - 1, false},
		{"on player row", tuning.PlayerRow(), true},
		{"below player row", tuning.PlayerRow() + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInvadersAt(tuning, core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: tt.row})
			if got := f.ReachedBottom(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestInvadersUpdateUntilBottom drives the formation down to the player row
func TestInvadersUpdateUntilBottom(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvaders(tuning)

	for i := 0; i < 10000 && !f.ReachedBottom(); i++ {
		f.Update(tuning.MovePeriodMax)
	}
	if !f.ReachedBottom() {
		t.Fatal("Expected formation to reach the bottom")
	}
	if f.AllKilled() {
		t.Error("Expected invaders still alive")
	}
}

// TestMovePeriodRamp verifies fewer invaders step faster within bounds
func TestMovePeriodRamp(t *testing.T) {
	tuning := parameter.DefaultTuning()

	full := tuning.MovePeriod(tuning.FormationColumns * tuning.FormationRows)
	half := tuning.MovePeriod(tuning.FormationColumns * tuning.FormationRows / 2)
	single := tuning.MovePeriod(1)

	if !(full > half && half > single) {
		t.Errorf("Expected decreasing periods, got %v %v %v", full, half, single)
	}
	if single != tuning.MovePeriodMin {
		t.Errorf("Expected single invader at floor %v, got %v", tuning.MovePeriodMin, single)
	}
	if tuning.MovePeriod(10000) != tuning.MovePeriodMax {
		t.Errorf("Expected huge formation capped at %v", tuning.MovePeriodMax)
	}

	f := NewInvadersAt(tuning, core.Point{X: 2, Y: 2}, core.Point{X: 4, Y: 2})
	before := f.MovePeriod()
	f.KillInvaderAt(2, 2)
	if f.MovePeriod() > before {
		t.Errorf("Expected period not to grow after a kill, got %v > %v", f.MovePeriod(), before)
	}
}

// TestInvadersGlyphAlternates verifies the animation glyph follows timer progress
func TestInvadersGlyphAlternates(t *testing.T) {
	tuning := parameter.DefaultTuning()
	f := NewInvadersAt(tuning, core.Point{X: 1, Y: 1})

	fr := core.NewFrame(tuning.Cols, tuning.Rows)
	f.Draw(&fr)
	if got := fr.At(1, 1); got != parameter.GlyphInvader {
		t.Errorf("Expected %q at start of period, got %q", parameter.GlyphInvader, got)
	}

	f.Update(f.MovePeriod() * 3 / 4)
	f.Draw(&fr)
	if got := fr.At(1, 1); got != parameter.GlyphInvaderAlt {
		t.Errorf("Expected %q late in period, got %q", parameter.GlyphInvaderAlt, got)
	}
}
