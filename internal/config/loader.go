package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the Dino Runner configuration.
// Search order: customPath -> ~/.dino/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadDino(customPath string) (DinoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dino.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dino.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultDinoConfig and validates the result.
func Parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DinoConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every value that would leave the engine unplayable.
func Validate(cfg DinoConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Field.Width > 0 && cfg.Field.Height > 0, "field size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	check(cfg.Ground.Y > 0 && cfg.Ground.Y <= cfg.Field.Height, "ground.y must be in (0, field.height], got %v", cfg.Ground.Y)
	check(cfg.Ground.Speed > 0, "ground.speed must be positive, got %v", cfg.Ground.Speed)
	check(cfg.Player.Width > 0 && cfg.Player.Height > 0, "player size must be positive")
	check(cfg.Player.DuckWidth > 0 && cfg.Player.DuckHeight > 0, "player duck size must be positive")
	check(cfg.Player.Height <= cfg.Ground.Y, "player.height must not exceed ground.y")
	check(cfg.Physics.Gravity > 0, "physics.gravity must be positive, got %v", cfg.Physics.Gravity)
	check(cfg.Physics.JumpPower < 0, "physics.jump_power must be negative, got %v", cfg.Physics.JumpPower)
	check(cfg.Spawn.Interval > 0, "spawn.interval must be positive, got %d", cfg.Spawn.Interval)
	check(cfg.Spawn.AerialChance >= 0 && cfg.Spawn.AerialChance <= 1, "spawn.aerial_chance must be in [0, 1], got %v", cfg.Spawn.AerialChance)
	check(cfg.Spawn.ScoreAward >= 0, "spawn.score_award must not be negative")
	check(cfg.Obstacles.Aerial.Width > 0 && cfg.Obstacles.Aerial.Height > 0, "obstacles.aerial size must be positive")
	for _, name := range GroundVariants {
		size, ok := cfg.Obstacles.Ground[name]
		check(ok, "obstacles.ground.%s is missing", name)
		if ok {
			check(size.Width > 0 && size.Height > 0, "obstacles.ground.%s size must be positive", name)
		}
	}
	check(cfg.Animation.Period >= 2, "animation.period must be at least 2, got %d", cfg.Animation.Period)
	check(cfg.Controls.DuckReleaseMs > 0, "controls.duck_release_ms must be positive, got %d", cfg.Controls.DuckReleaseMs)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", filename)
}
