package entities

import (
	"time"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// ShotState is the lifecycle stage of a shot
type ShotState int

const (
	ShotFlying ShotState = iota
	ShotExploding
	ShotDead
)

// String returns the state name
func (s ShotState) String() string {
	switch s {
	case ShotFlying:
		return "flying"
	case ShotExploding:
		return "exploding"
	case ShotDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Shot is a player projectile climbing towards row 0
type Shot struct {
	X, Y int

	// row held before the last Update; rows from here up to Y were crossed
	from int

	exploding bool
	timer     core.Timer
	explosion time.Duration
}

// NewShot creates a flying shot at the given cell
func NewShot(x, y int, step, explosion time.Duration) *Shot {
	return &Shot{
		X:         x,
		Y:         y,
		from:      y,
		timer:     core.NewTimer(step),
		explosion: explosion,
	}
}

// Update advances the shot by delta
// Flying shots climb one row per elapsed step; exploding shots only count down
func (s *Shot) Update(delta time.Duration) {
	s.from = s.Y
	s.timer.Update(delta)
	if s.exploding {
		return
	}
	for s.Y >= 0 && s.timer.Consume() {
		s.Y--
	}
}

// Explode freezes the shot and starts its removal countdown
// Calling it again on an exploding shot changes nothing
func (s *Shot) Explode() {
	if s.exploding {
		return
	}
	s.exploding = true
	s.timer = core.NewTimer(s.explosion)
}

// Exploding reports whether the shot has hit something
func (s *Shot) Exploding() bool {
	return s.exploding
}

// Dead reports whether the shot finished exploding or left the field
// A shot leaving the top stays until the update after, so the rows it
// crossed on the way out are still checked for hits
func (s *Shot) Dead() bool {
	if s.exploding {
		return s.timer.Ready()
	}
	return s.Y < 0 && s.from < 0
}

// hitAlong checks every row crossed by the last Update, nearest first,
// and explodes the shot on the first row the target reports a kill
func (s *Shot) hitAlong(target HitTarget) bool {
	for y := s.from; y >= s.Y && y >= 0; y-- {
		if target.KillInvaderAt(s.X, y) {
			s.Y = y
			s.Explode()
			return true
		}
	}
	return false
}

// State returns the current lifecycle stage
func (s *Shot) State() ShotState {
	switch {
	case s.Dead():
		return ShotDead
	case s.exploding:
		return ShotExploding
	default:
		return ShotFlying
	}
}

// Draw implements core.Drawable
func (s *Shot) Draw(f *core.Frame) {
	if s.exploding {
		f.Set(s.X, s.Y, parameter.GlyphExplosion)
		return
	}
	f.Set(s.X, s.Y, parameter.GlyphShot)
}

// newShotFrom builds a shot using tuning timings
func newShotFrom(t parameter.Tuning, x, y int) *Shot {
	return NewShot(x, y, t.ShotStep, t.ShotExplosion)
}
