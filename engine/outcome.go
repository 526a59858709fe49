package engine

import "github.com/lixenwraith/invaders/audio"

// Outcome is how a session ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeQuit
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Cue returns the sound played when the session ends this way
func (o Outcome) Cue() (audio.Cue, bool) {
	switch o {
	case OutcomeWin:
		return audio.CueWin, true
	case OutcomeLose, OutcomeQuit:
		return audio.CueLose, true
	default:
		return "", false
	}
}

// Terminal condition queries on the formation
type formationState interface {
	AllKilled() bool
	ReachedBottom() bool
}

// OutcomeLatch records the first terminal condition of a session
// Later conditions are ignored once one is latched
type OutcomeLatch struct {
	outcome Outcome
}

// Evaluate checks win then lose and latches the first hit
func (l *OutcomeLatch) Evaluate(f formationState) Outcome {
	if l.outcome != OutcomeNone {
		return l.outcome
	}
	switch {
	case f.AllKilled():
		l.outcome = OutcomeWin
	case f.ReachedBottom():
		l.outcome = OutcomeLose
	}
	return l.outcome
}

// Quit latches a quit unless an outcome already exists
func (l *OutcomeLatch) Quit() Outcome {
	if l.outcome == OutcomeNone {
		l.outcome = OutcomeQuit
	}
	return l.outcome
}

// Outcome returns the latched outcome
func (l *OutcomeLatch) Outcome() Outcome {
	return l.outcome
}
