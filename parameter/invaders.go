package parameter

import "time"

// Play Field
const (
	// FieldCols is the default play-field width in cells
	FieldCols = 40

	// FieldRows is the default play-field height in cells
	FieldRows = 20
)

// Game Loop Timing
const (
	// TickSleep caps the tick rate; the loop is otherwise driven by measured deltas
	TickSleep = 1 * time.Millisecond

	// FrameQueueSize is the buffered capacity of the frame channel
	// A full queue drops the frame; the next one supersedes it
	FrameQueueSize = 4
)

// Player Shots
const (
	// MaxShots is the number of shots a player may have in flight or exploding
	MaxShots = 2

	// ShotStep is the time for a flying shot to climb one row
	ShotStep = 50 * time.Millisecond

	// ShotExplosion is the countdown from hit to removal
	ShotExplosion = 250 * time.Millisecond
)

// Invader Formation
const (
	FormationColumns = 18
	FormationRows    = 4
	FormationMarginX = 2
	FormationTop     = 2
	FormationSpacing = 2

	// MovePeriodMax bounds the step period of a full formation
	MovePeriodMax = 2000 * time.Millisecond

	// MovePeriodMin bounds the step period of the last invaders standing
	MovePeriodMin = 250 * time.Millisecond

	// MovePeriodPerInvader scales the step period with the live count
	MovePeriodPerInvader = 25 * time.Millisecond
)

// Glyphs
const (
	GlyphPlayer     = 'A'
	GlyphShot       = '|'
	GlyphExplosion  = '*'
	GlyphInvader    = 'x'
	GlyphInvaderAlt = '+'
)
