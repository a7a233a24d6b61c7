// Package config loads the optional YAML configuration shared by the
// imgindex and imgopt binaries.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the tunable settings for both binaries. Every field is
// optional; missing values keep their compiled-in defaults.
type Config struct {
	Listing  ListingConfig  `yaml:"listing"`
	Optimize OptimizeConfig `yaml:"optimize"`
}

type ListingConfig struct {
	// Extensions are matched case-insensitively, with or without a leading
	// dot. Formats outside png/gif/jpg/jpeg pass through the listing with no
	// dimension attributes.
	Extensions []string `yaml:"extensions"`
	Output     string   `yaml:"output"`
	ThumbSize  int      `yaml:"thumb_size"`
}

type OptimizeConfig struct {
	// Tools maps an extension (without dot) to the external optimizer
	// command line; the output file path is appended as the last argument.
	Tools       map[string][]string `yaml:"tools"`
	WebPQuality int                 `yaml:"webp_quality"`
	MaxWidth    int                 `yaml:"max_width"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listing: ListingConfig{
			Extensions: []string{"png", "gif", "jpg", "jpeg", "svg", "webp"},
			Output:     "images.html",
			ThumbSize:  256,
		},
		Optimize: OptimizeConfig{
			WebPQuality: 80,
		},
	}
}

// Load reads and parses the configuration file, layering it over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Listing.Output == "" {
		cfg.Listing.Output = "images.html"
	}
	if cfg.Listing.ThumbSize <= 0 {
		cfg.Listing.ThumbSize = 256
	}
	return cfg, nil
}
