package parameter

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is returned by Validate for inconsistent tuning values
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay number the core depends on
// Zero values are not meaningful; start from DefaultTuning
type Tuning struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	MaxShots      int           `yaml:"max_shots"`
	ShotStep      time.Duration `yaml:"shot_step"`
	ShotExplosion time.Duration `yaml:"shot_explosion"`

	FormationColumns int `yaml:"formation_columns"`
	FormationRows    int `yaml:"formation_rows"`
	FormationMarginX int `yaml:"formation_margin_x"`
	FormationTop     int `yaml:"formation_top"`
	FormationSpacing int `yaml:"formation_spacing"`

	MovePeriodMax        time.Duration `yaml:"move_period_max"`
	MovePeriodMin        time.Duration `yaml:"move_period_min"`
	MovePeriodPerInvader time.Duration `yaml:"move_period_per_invader"`

	TickSleep      time.Duration `yaml:"tick_sleep"`
	FrameQueueSize int           `yaml:"frame_queue_size"`
}

// DefaultTuning returns the classic 40x20 layout
func DefaultTuning() Tuning {
	return Tuning{
		Cols:                 FieldCols,
		Rows:                 FieldRows,
		MaxShots:             MaxShots,
		ShotStep:             ShotStep,
		ShotExplosion:        ShotExplosion,
		FormationColumns:     FormationColumns,
		FormationRows:        FormationRows,
		FormationMarginX:     FormationMarginX,
		FormationTop:         FormationTop,
		FormationSpacing:     FormationSpacing,
		MovePeriodMax:        MovePeriodMax,
		MovePeriodMin:        MovePeriodMin,
		MovePeriodPerInvader: MovePeriodPerInvader,
		TickSleep:            TickSleep,
		FrameQueueSize:       FrameQueueSize,
	}
}

// PlayerRow is the fixed row of the player ship
func (t Tuning) PlayerRow() int {
	return t.Rows - 1
}

// MovePeriod returns the formation step period for the given live count
func (t Tuning) MovePeriod(live int) time.Duration {
	p := time.Duration(live) * t.MovePeriodPerInvader
	if p < t.MovePeriodMin {
		p = t.MovePeriodMin
	}
	if p > t.MovePeriodMax {
		p = t.MovePeriodMax
	}
	return p
}

// Validate checks that the formation fits the field above the player row
func (t Tuning) Validate() error {
	switch {
	case t.Cols < 3 || t.Rows < 3:
		return fmt.Errorf("%w: field %dx%d too small", ErrInvalidTuning, t.Cols, t.Rows)
	case t.MaxShots < 1:
		return fmt.Errorf("%w: max_shots must be positive", ErrInvalidTuning)
	case t.ShotStep <= 0 || t.ShotExplosion <= 0:
		return fmt.Errorf("%w: shot timings must be positive", ErrInvalidTuning)
	case t.MovePeriodMin <= 0 || t.MovePeriodMax < t.MovePeriodMin:
		return fmt.Errorf("%w: move period bounds %v..%v", ErrInvalidTuning, t.MovePeriodMin, t.MovePeriodMax)
	case t.MovePeriodPerInvader < 0:
		return fmt.Errorf("%w: move_period_per_invader is negative", ErrInvalidTuning)
	case t.FormationColumns < 1 || t.FormationRows < 1 || t.FormationSpacing < 1:
		return fmt.Errorf("%w: empty formation", ErrInvalidTuning)
	case t.FrameQueueSize < 1:
		return fmt.Errorf("%w: frame_queue_size must be positive", ErrInvalidTuning)
	case t.TickSleep < 0:
		return fmt.Errorf("%w: tick_sleep is negative", ErrInvalidTuning)
	}

	right := t.FormationMarginX + (t.FormationColumns-1)*t.FormationSpacing
	if t.FormationMarginX < 0 || right >= t.Cols {
		return fmt.Errorf("%w: formation spans columns %d..%d of %d", ErrInvalidTuning, t.FormationMarginX, right, t.Cols)
	}
	bottom := t.FormationTop + (t.FormationRows-1)*t.FormationSpacing
	if t.FormationTop < 0 || bottom >= t.PlayerRow() {
		return fmt.Errorf("%w: formation reaches row %d, player row is %d", ErrInvalidTuning, bottom, t.PlayerRow())
	}
	return nil
}
