package flipbook

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables for a Book. Every field can be set from the
// environment with the FLIPBOOK_ prefix.
type Config struct {
	// ClampCeiling is the per-axis limit for normalized drag positions.
	ClampCeiling float64 `env:"CLAMP_CEILING" envDefault:"85"`

	// StartX and StartY are the draggable's initial position in percent.
	StartX float64 `env:"START_X" envDefault:"10"`
	StartY float64 `env:"START_Y" envDefault:"20"`

	ZoneName      string `env:"ZONE" envDefault:"interactive-zone"`
	DraggableName string `env:"DRAGGABLE" envDefault:"draggable-hammer"`
	TargetName    string `env:"TARGET" envDefault:"page3-background"`

	// FixedTarget, when non-empty, replaces live measurement of TargetName
	// with a constant screen rectangle (left, top, right, bottom). It only
	// matches one viewport.
	FixedTarget []float64 `env:"FIXED_TARGET" envSeparator:","`

	// RetireOnReveal stops new drag sessions once the target is revealed.
	RetireOnReveal bool `env:"RETIRE_ON_REVEAL" envDefault:"false"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ClampCeiling:  DefaultClampCeiling,
		StartX:        10,
		StartY:        20,
		ZoneName:      "interactive-zone",
		DraggableName: "draggable-hammer",
		TargetName:    "page3-background",
	}
}

// LoadConfig reads a Config from FLIPBOOK_* environment variables, filling
// unset fields with defaults.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "FLIPBOOK_"})
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.ClampCeiling <= 0 || c.ClampCeiling > 100 {
		return fmt.Errorf("clamp ceiling %v out of range (0, 100]", c.ClampCeiling)
	}
	if c.ZoneName == "" || c.DraggableName == "" || c.TargetName == "" {
		return errors.New("element names must not be empty")
	}
	if len(c.FixedTarget) != 0 {
		if len(c.FixedTarget) != 4 {
			return fmt.Errorf("fixed target needs 4 values, got %d", len(c.FixedTarget))
		}
		if !c.fixedTarget().Measurable() {
			return fmt.Errorf("fixed target %v is empty", c.FixedTarget)
		}
	}
	return nil
}

// StartPosition returns the clamped initial position of the draggable.
func (c Config) StartPosition() Percent {
	return ClampPercent(Percent{X: c.StartX, Y: c.StartY}, c.ClampCeiling)
}

// Target returns the drop region described by the config: a LiveTarget on
// TargetName unless FixedTarget is set.
func (c Config) Target(m Measurer) TargetRegion {
	if len(c.FixedTarget) == 4 {
		return FixedTarget(c.fixedTarget())
	}
	return LiveTarget{Measurer: m, Name: c.TargetName}
}

func (c Config) fixedTarget() Rect {
	if len(c.FixedTarget) != 4 {
		return Rect{}
	}
	return RectFromEdges(c.FixedTarget[0], c.FixedTarget[1], c.FixedTarget[2], c.FixedTarget[3])
}
