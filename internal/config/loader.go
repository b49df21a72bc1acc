package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the audio section.
const (
	EnvAudioEnabled = "BRICKSTORM_AUDIO_ENABLED"
	EnvVolume       = "BRICKSTORM_VOLUME"
	EnvSampleRate   = "BRICKSTORM_SAMPLE_RATE"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.brickstorm/configs/brickstorm.yaml ->
// ./configs/brickstorm.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (BrickstormConfig, error) {
	cfg := DefaultBrickstormConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBrickstormConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("brickstorm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultBrickstormConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "brickstorm.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultBrickstormConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBrickstormYAML, &cfg); err != nil {
		return DefaultBrickstormConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickstorm", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyPreset(cfg *BrickstormConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 180
		cfg.Ball.BaseSpeed = 190
		cfg.Ball.LevelSpeedStep = 15
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 110
		cfg.Ball.BaseSpeed = 260
		cfg.Ball.LevelSpeedStep = 25
	}
	if cfg.Gameplay.Lives > cfg.Gameplay.MaxLives {
		cfg.Gameplay.MaxLives = cfg.Gameplay.Lives
	}
}

// ApplyEnv overrides the audio section from environment variables.
// Malformed values are ignored.
func ApplyEnv(cfg *BrickstormConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.Audio.SampleRate = val
		}
	}
}
