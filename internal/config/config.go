// Package config provides YAML-based configuration loading for the gravity worm
// game. Defaults are embedded in the binary and can be overridden per user.
package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// WormConfig contains all configuration for the gravity worm game.
type WormConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Physics PhysicsConfig `yaml:"physics"`
	Prizes  PrizeConfig   `yaml:"prizes"`
	Colors  ColorConfig   `yaml:"colors"`
	Input   InputConfig   `yaml:"input"`
}

// BoardConfig defines the viewport and the block grid laid over it.
type BoardConfig struct {
	Width   int `yaml:"width"`   // Viewport width in pixels
	Height  int `yaml:"height"`  // Viewport height in pixels
	Columns int `yaml:"columns"` // Horizontal block count; block width = Width / Columns
}

// BlockWidth returns the pixel size of one grid block.
func (b BoardConfig) BlockWidth() int {
	if b.Columns <= 0 {
		return 0
	}
	return b.Width / b.Columns
}

// Rows returns the grid height in blocks.
func (b BoardConfig) Rows() int {
	bw := b.BlockWidth()
	if bw <= 0 {
		return 0
	}
	return b.Height / bw
}

// PhysicsConfig defines the fixed-step update parameters.
type PhysicsConfig struct {
	TickSeconds     float64 `yaml:"tick_seconds"`     // Accumulated time that triggers one tick
	MaxVelocity     int     `yaml:"max_velocity"`     // Worm velocity is clamped to [-max, max]
	VelocityScale   int     `yaml:"velocity_scale"`   // Velocity units per block (eighths by default)
	InitialVelocity int     `yaml:"initial_velocity"` // Worm velocity at the start of a run
	MinGap          int     `yaml:"min_gap"`          // Smallest cave gap the bounce correction may leave
}

// PrizeConfig defines prize spawning and collection.
type PrizeConfig struct {
	SpawnOneIn int `yaml:"spawn_one_in"` // A prize spawns on average once every N ticks
	Bonus      int `yaml:"bonus"`        // Score added per collected prize
	Reach      int `yaml:"reach"`        // Collection distance (exclusive) on both axes
}

// ColorConfig holds the cosmetic palette as "#rrggbb" strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	Wall       string `yaml:"wall"`
	WormFall   string `yaml:"worm_fall"`
	WormClimb  string `yaml:"worm_climb"`
	Prize      string `yaml:"prize"`
	Text       string `yaml:"text"`
}

// InputConfig tunes how key presses are turned into press/release events.
type InputConfig struct {
	// ReleaseAfterMs is how long the action key may go without a repeat before
	// it counts as released. Terminals only report presses and auto-repeats.
	ReleaseAfterMs int `yaml:"release_after_ms"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c WormConfig) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("config: board size must be positive, got %dx%d", b.Width, b.Height)
	}
	if b.Columns < 2 {
		return fmt.Errorf("config: board.columns must be at least 2, got %d", b.Columns)
	}
	if b.Width%b.Columns != 0 {
		return fmt.Errorf("config: board.width %d is not divisible by board.columns %d", b.Width, b.Columns)
	}
	if b.BlockWidth() > b.Height {
		return fmt.Errorf("config: board.height %d is smaller than one block (%d)", b.Height, b.BlockWidth())
	}

	p := c.Physics
	if p.TickSeconds <= 0 {
		return fmt.Errorf("config: physics.tick_seconds must be positive, got %v", p.TickSeconds)
	}
	if p.MaxVelocity <= 0 {
		return fmt.Errorf("config: physics.max_velocity must be positive, got %d", p.MaxVelocity)
	}
	if p.VelocityScale <= 0 {
		return fmt.Errorf("config: physics.velocity_scale must be positive, got %d", p.VelocityScale)
	}
	if p.InitialVelocity < -p.MaxVelocity || p.InitialVelocity > p.MaxVelocity {
		return fmt.Errorf("config: physics.initial_velocity %d outside [-%d, %d]",
			p.InitialVelocity, p.MaxVelocity, p.MaxVelocity)
	}
	if p.MinGap < 2 {
		return fmt.Errorf("config: physics.min_gap must be at least 2, got %d", p.MinGap)
	}

	rows := b.Rows()
	if gap := rows*7/8 - rows/8; gap <= p.MinGap {
		return fmt.Errorf("config: board has %d rows, initial cave gap %d must exceed min_gap %d", rows, gap, p.MinGap)
	}

	if c.Prizes.SpawnOneIn < 1 {
		return fmt.Errorf("config: prizes.spawn_one_in must be at least 1, got %d", c.Prizes.SpawnOneIn)
	}
	if c.Prizes.Bonus < 0 {
		return fmt.Errorf("config: prizes.bonus must not be negative, got %d", c.Prizes.Bonus)
	}
	if c.Prizes.Reach <= 0 {
		return fmt.Errorf("config: prizes.reach must be positive, got %d", c.Prizes.Reach)
	}

	colors := map[string]string{
		"background": c.Colors.Background,
		"wall":       c.Colors.Wall,
		"worm_fall":  c.Colors.WormFall,
		"worm_climb": c.Colors.WormClimb,
		"prize":      c.Colors.Prize,
		"text":       c.Colors.Text,
	}
	for name, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("config: colors.%s %q: %w", name, hex, err)
		}
	}

	if c.Input.ReleaseAfterMs <= 0 {
		return fmt.Errorf("config: input.release_after_ms must be positive, got %d", c.Input.ReleaseAfterMs)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c WormConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
