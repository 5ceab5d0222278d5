package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const envPrefix = "GOLIFE_"

// Config holds the configuration for the simulation
type Config struct {
	FPS      int     `json:"fps" env:"FPS"`
	SavePath string  `json:"save_path" env:"SAVE_PATH"`
	Density  float64 `json:"density" env:"DENSITY"`
	Sound    bool    `json:"sound" env:"SOUND"`
	Debug    bool    `json:"debug" env:"DEBUG"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FPS:      25,
		SavePath: "grid.data",
		Density:  0.5,
	}
}

// LoadConfig merges the JSON config file over the defaults, then applies
// GOLIFE_* environment variable overrides. A missing file is not an error;
// defaults apply.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err == nil {
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	} else if !os.IsNotExist(err) {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = env.ParseWithOptions(&config, env.Options{Prefix: envPrefix}); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse environment overrides")
	}

	return config, nil
}

// FrameDelay returns the fixed per-frame sleep for the configured rate
func (c Config) FrameDelay() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultConfig().FPS
	}
	return time.Second / time.Duration(fps)
}
