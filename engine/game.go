package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/entities"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
)

// Stats counts what happened during a session
type Stats struct {
	Ticks         uint64
	ShotsFired    uint64
	Kills         uint64
	FormationStep uint64
	FramesSent    uint64
	FramesDropped uint64
}

// Game is the single-threaded tick driver
// It owns every entity and is the only producer of frames
type Game struct {
	tuning parameter.Tuning
	clock  TimeProvider
	input  input.Source
	sfx    audio.Player
	frames chan<- core.Frame

	player   *entities.Player
	invaders *entities.Invaders
	latch    OutcomeLatch
	stats    Stats

	lastTick time.Time
}

// NewGame creates a session with a fresh player and formation
// frames receives one frame per tick; Run closes it on return
func NewGame(tuning parameter.Tuning, clock TimeProvider, in input.Source, sfx audio.Player, frames chan<- core.Frame) *Game {
	if sfx == nil {
		sfx = audio.Silent{}
	}
	return &Game{
		tuning:   tuning,
		clock:    clock,
		input:    in,
		sfx:      sfx,
		frames:   frames,
		player:   entities.NewPlayer(tuning),
		invaders: entities.NewInvaders(tuning),
		lastTick: clock.Now(),
	}
}

// Player returns the player entity
func (g *Game) Player() *entities.Player {
	return g.player
}

// Invaders returns the formation
func (g *Game) Invaders() *entities.Invaders {
	return g.invaders
}

// Stats returns a snapshot of session counters
func (g *Game) Stats() Stats {
	return g.stats
}

// Outcome returns the latched outcome, OutcomeNone while playing
func (g *Game) Outcome() Outcome {
	return g.latch.Outcome()
}

// Run plays until win, lose or quit, then closes the frame channel
func (g *Game) Run() Outcome {
	defer close(g.frames)

	g.sfx.Play(audio.CueStartup)
	g.lastTick = g.clock.Now()

	outcome := OutcomeNone
	for outcome == OutcomeNone {
		outcome = g.Tick()
	}

	if cue, ok := outcome.Cue(); ok {
		g.sfx.Play(cue)
	}
	log.Printf("session ended: %s after %d ticks, %d kills, %d/%d frames dropped",
		outcome, g.stats.Ticks, g.stats.Kills, g.stats.FramesDropped, g.stats.FramesSent+g.stats.FramesDropped)
	return outcome
}

// Tick runs one fixed sequence of the loop and returns the latched outcome
func (g *Game) Tick() Outcome {
	now := g.clock.Now()
	delta := now.Sub(g.lastTick)
	g.lastTick = now
	g.stats.Ticks++

	if quit := g.applyInput(); quit {
		return g.latch.Quit()
	}

	g.player.Update(delta)

	if g.invaders.Update(delta) {
		g.stats.FormationStep++
		g.sfx.Play(audio.CueMove)
	}

	before := g.invaders.Count()
	if g.player.DetectHits(g.invaders) {
		g.stats.Kills += uint64(before - g.invaders.Count())
		g.sfx.Play(audio.CueExplode)
	}

	g.send(g.Frame())

	g.clock.Sleep(g.tuning.TickSleep)

	return g.latch.Evaluate(g.invaders)
}

// applyInput drains pending commands; returns true on quit
func (g *Game) applyInput() bool {
	for {
		switch g.input.Poll() {
		case input.CommandNone:
			return false
		case input.CommandMoveLeft:
			g.player.MoveLeft()
		case input.CommandMoveRight:
			g.player.MoveRight()
		case input.CommandFire:
			if g.player.Fire() {
				g.stats.ShotsFired++
				g.sfx.Play(audio.CuePew)
			}
		case input.CommandQuit:
			return true
		}
	}
}

// Frame builds a fresh frame from the current entity state
func (g *Game) Frame() core.Frame {
	f := core.NewFrame(g.tuning.Cols, g.tuning.Rows)
	core.DrawAll(&f, g.player, g.invaders)
	return f
}

// send hands the frame off without waiting on the renderer
func (g *Game) send(f core.Frame) {
	select {
	case g.frames <- f:
		g.stats.FramesSent++
	default:
		g.stats.FramesDropped++
	}
}
