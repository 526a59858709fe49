package audio

// Cue identifies a sound effect requested by the game loop
type Cue string

const (
	CueStartup Cue = "startup"
	CueMove    Cue = "move"
	CuePew     Cue = "pew"
	CueExplode Cue = "explode"
	CueWin     Cue = "win"
	CueLose    Cue = "lose"
)

// Cues lists every known cue
var Cues = []Cue{CueStartup, CueMove, CuePew, CueExplode, CueWin, CueLose}

// Player is the audio surface used by the game loop
// Play never reports failure; Wait blocks until queued cues finish
type Player interface {
	Play(Cue)
	Wait()
}

// Silent discards every cue
type Silent struct{}

// Play implements Player
func (Silent) Play(Cue) {}

// Wait implements Player
func (Silent) Wait() {}
