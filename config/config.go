package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/parameter"
)

// ErrInvalidDimensions is returned when the field does not fit the terminal
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Config is the process configuration, read from the environment
type Config struct {
	Cols       int     `env:"INVADERS_COLS"` // 0 keeps the tuning value
	Rows       int     `env:"INVADERS_ROWS"`
	Muted      bool    `env:"INVADERS_MUTE" envDefault:"false"`
	Volume     float64 `env:"INVADERS_VOLUME" envDefault:"0.5"`
	SampleRate int     `env:"INVADERS_SAMPLE_RATE" envDefault:"44100"`
	Debug      bool    `env:"INVADERS_DEBUG" envDefault:"false"`
	TuningFile string  `env:"INVADERS_TUNING_FILE"`
}

// Load reads Config from the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads Config from the given variables only
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	return cfg, nil
}

// Tuning builds the gameplay tuning: defaults, then the tuning file, then
// the field dimensions from the environment
func (c Config) Tuning() (parameter.Tuning, error) {
	t := parameter.DefaultTuning()

	if c.TuningFile != "" {
		data, err := os.ReadFile(c.TuningFile)
		if err != nil {
			return t, fmt.Errorf("read tuning file: %w", err)
		}
		if t, err = DecodeTuning(data, t); err != nil {
			return t, fmt.Errorf("%s: %w", c.TuningFile, err)
		}
	}

	if c.Cols > 0 {
		t.Cols = c.Cols
	}
	if c.Rows > 0 {
		t.Rows = c.Rows
	}

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// DecodeTuning overlays YAML onto base; unknown keys are rejected
func DecodeTuning(data []byte, base parameter.Tuning) (parameter.Tuning, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	t := base
	if err := dec.Decode(&t); err != nil {
		// Empty documents keep the base
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("%w: %v", parameter.ErrInvalidTuning, err)
	}
	return t, nil
}

// Audio returns the playback settings
func (c Config) Audio() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = !c.Muted
	cfg.MasterVolume = c.Volume
	if c.SampleRate > 0 {
		cfg.SampleRate = c.SampleRate
	}
	return cfg
}

// CheckFits reports whether a cols x rows field fits a screen of the given size
func CheckFits(cols, rows, screenW, screenH int) error {
	if cols > screenW || rows > screenH {
		return fmt.Errorf("%w: field %dx%d needs a terminal of at least that size, have %dx%d",
			ErrInvalidDimensions, cols, rows, screenW, screenH)
	}
	return nil
}
