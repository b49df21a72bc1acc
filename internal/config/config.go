// Package config provides YAML-based game configuration loading and
// difficulty presets for brickstorm.
package config

// BrickstormConfig contains all tunable configuration for the game.
type BrickstormConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Audio    AudioConfig    `yaml:"audio"`
}

// GameplayConfig defines lives, shields and level structure.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	MaxLives   int `yaml:"max_lives"`   // Cap applied on level advance
	MaxShields int `yaml:"max_shields"` // Cap for the shield power-up
	BossEvery  int `yaml:"boss_every"`  // Every Nth level is a boss level
}

// PaddleConfig defines paddle geometry and speed in logical units.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	MaxWidth float64 `yaml:"max_width"` // Cap for the expand power-up
	Speed    float64 `yaml:"speed"`     // Units per second
}

// BallConfig defines ball speed scaling.
type BallConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`       // Units per second at level 1
	LevelSpeedStep float64 `yaml:"level_speed_step"` // Added per level above 1
}

// AudioConfig defines the tone synthesizer.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown values yield the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
