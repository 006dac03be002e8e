// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Settings are the runtime-tunable knobs of a session. The compiled-in
// constants above are the defaults; a game.yaml next to the binary can
// override any of them without a rebuild.
type Settings struct {
	GridWidth         int     `mapstructure:"grid_width"`
	GridHeight        int     `mapstructure:"grid_height"`
	PlayerHealth      int     `mapstructure:"player_health"`
	StartingResources int     `mapstructure:"starting_resources"`
	HandSize          int     `mapstructure:"hand_size"`
	SpawnInterval     float64 `mapstructure:"spawn_interval"`
	Seed              int64   `mapstructure:"seed"`
}

// DefaultSettings returns the built-in balance values.
func DefaultSettings() Settings {
	return Settings{
		GridWidth:         GridWidth,
		GridHeight:        GridHeight,
		PlayerHealth:      PlayerHealth,
		StartingResources: StartingResources,
		HandSize:          HandSize,
		SpawnInterval:     SpawnInterval,
		Seed:              0,
	}
}

// LoadSettings reads overrides from the given file. A missing file is not
// an error: the defaults are returned unchanged.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); err != nil {
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("grid_width", s.GridWidth)
	v.SetDefault("grid_height", s.GridHeight)
	v.SetDefault("player_health", s.PlayerHealth)
	v.SetDefault("starting_resources", s.StartingResources)
	v.SetDefault("hand_size", s.HandSize)
	v.SetDefault("spawn_interval", s.SpawnInterval)
	v.SetDefault("seed", s.Seed)

	if err := v.ReadInConfig(); err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s, nil
}
