package config

import (
	_ "embed"
)

//go:embed defaults/brickstorm.yaml
var defaultBrickstormYAML []byte

// DefaultBrickstormConfig returns the hardcoded configuration used when even
// the embedded YAML cannot be parsed.
func DefaultBrickstormConfig() BrickstormConfig {
	return BrickstormConfig{
		Gameplay: GameplayConfig{
			Lives:      3,
			MaxLives:   5,
			MaxShields: 3,
			BossEvery:  6,
		},
		Paddle: PaddleConfig{
			Width:    140,
			MaxWidth: 260,
			Speed:    640,
		},
		Ball: BallConfig{
			BaseSpeed:      220,
			LevelSpeedStep: 20,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBrickstormYAML
}
