// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSimilarityThreshold = 0.85
	DefaultHashSize            = 8
	DefaultRenderDPI           = 200

	// Thresholds below 0.70 group photos too aggressively to be useful.
	MinSimilarityThreshold = 0.70
	MaxSimilarityThreshold = 1.0
)

type Config struct {
	PhotoSourceDir      string  `yaml:"photo_source_dir"`
	OutputDir           string  `yaml:"output_dir"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	HashSize            int     `yaml:"hash_size"`
	RenderDPI           float64 `yaml:"render_dpi"`
	ZipOutput           bool    `yaml:"zip_output"`
}

func Default() *Config {
	return &Config{
		PhotoSourceDir:      "./photos",
		OutputDir:           "./deduped",
		SimilarityThreshold: DefaultSimilarityThreshold,
		HashSize:            DefaultHashSize,
		RenderDPI:           DefaultRenderDPI,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.HashSize == 0 {
		cfg.HashSize = DefaultHashSize
	}
	if cfg.RenderDPI == 0 {
		cfg.RenderDPI = DefaultRenderDPI
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SimilarityThreshold < MinSimilarityThreshold || c.SimilarityThreshold > MaxSimilarityThreshold {
		return fmt.Errorf("similarity_threshold %.2f out of range [%.2f, %.2f]",
			c.SimilarityThreshold, MinSimilarityThreshold, MaxSimilarityThreshold)
	}
	if c.HashSize < 2 {
		return fmt.Errorf("hash_size must be at least 2, got %d", c.HashSize)
	}
	if c.RenderDPI < 72 || c.RenderDPI > 600 {
		return fmt.Errorf("render_dpi %.0f out of range [72, 600]", c.RenderDPI)
	}
	return nil
}
