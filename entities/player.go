package entities

import (
	"slices"
	"time"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// HitTarget is the formation side of collision detection
type HitTarget interface {
	KillInvaderAt(x, y int) bool
}

// Player is the ship on the bottom row
type Player struct {
	x, y   int
	cols   int
	tuning parameter.Tuning
	shots  []*Shot
}

// NewPlayer places the ship centered on the bottom row
func NewPlayer(t parameter.Tuning) *Player {
	return &Player{
		x:      t.Cols / 2,
		y:      t.PlayerRow(),
		cols:   t.Cols,
		tuning: t,
		shots:  make([]*Shot, 0, t.MaxShots),
	}
}

// X returns the ship column
func (p *Player) X() int {
	return p.x
}

// Y returns the ship row
func (p *Player) Y() int {
	return p.y
}

// Shots returns the active shots; callers must not retain the slice
func (p *Player) Shots() []*Shot {
	return p.shots
}

// MoveLeft steps one column left, stopping at column 0
func (p *Player) MoveLeft() {
	if p.x > 0 {
		p.x--
	}
}

// MoveRight steps one column right, stopping at the last column
func (p *Player) MoveRight() {
	if p.x < p.cols-1 {
		p.x++
	}
}

// Fire launches a shot above the ship unless the shot cap is reached
func (p *Player) Fire() bool {
	if len(p.shots) >= p.tuning.MaxShots {
		return false
	}
	p.shots = append(p.shots, newShotFrom(p.tuning, p.x, p.y-1))
	return true
}

// Update advances every shot and drops the dead ones
func (p *Player) Update(delta time.Duration) {
	for _, s := range p.shots {
		s.Update(delta)
	}
	p.shots = slices.DeleteFunc(p.shots, (*Shot).Dead)
}

// DetectHits checks every flying shot against the target, covering each
// row the shot crossed since the previous Update
// Hit shots freeze on the hit row and are removed by a later Update
func (p *Player) DetectHits(target HitTarget) bool {
	hit := false
	for _, s := range p.shots {
		if s.Exploding() {
			continue
		}
		if s.hitAlong(target) {
			hit = true
		}
	}
	return hit
}

// Draw implements core.Drawable; shots are stamped after the ship
func (p *Player) Draw(f *core.Frame) {
	f.Set(p.x, p.y, parameter.GlyphPlayer)
	for _, s := range p.shots {
		s.Draw(f)
	}
}
