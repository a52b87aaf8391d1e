// Package config loads and validates bloomstat settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	HasherSipHash = "siphash"
	HasherMurmur3 = "murmur3"
)

// Config describes one false positive measurement run.
type Config struct {
	// Words is a newline separated word list.
	Words string `toml:"words" validate:"required"`
	// Capacity is the number of keys inserted and the number probed.
	Capacity int `toml:"capacity" validate:"gt=0"`
	// ErrorRate is the target false positive probability.
	ErrorRate float64 `toml:"error_rate" validate:"gt=0,lt=1"`
	Hasher    string  `toml:"hasher" validate:"oneof=siphash murmur3"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() *Config {
	return &Config{
		Words:     "/usr/share/dict/words",
		Capacity:  50000,
		ErrorRate: 0.05,
		Hasher:    HasherSipHash,
	}
}

// Load reads the TOML file at path on top of Default. The result is not
// validated, so flags can still override it.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
