package config

import (
	_ "embed"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultWormConfig returns the built-in configuration.
// Matches defaults/worm.yaml; used when the embedded file cannot be parsed.
func DefaultWormConfig() WormConfig {
	return WormConfig{
		Board: BoardConfig{
			Width:   512,
			Height:  512,
			Columns: 128,
		},
		Physics: PhysicsConfig{
			TickSeconds:     0.0625,
			MaxVelocity:     16,
			VelocityScale:   8,
			InitialVelocity: -16,
			MinGap:          2,
		},
		Prizes: PrizeConfig{
			SpawnOneIn: 10,
			Bonus:      10,
			Reach:      2,
		},
		Colors: ColorConfig{
			Background: "#ffffff",
			Wall:       "#000000",
			WormFall:   "#c0392b",
			WormClimb:  "#2980b9",
			Prize:      "#f1c40f",
			Text:       "#000000",
		},
		Input: InputConfig{
			ReleaseAfterMs: 700,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWormYAML
}
