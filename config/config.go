// Package config loads the optional iconforge.yaml file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-iconforge/cutout"
	"github.com/nvr-ai/go-iconforge/icons"
	"github.com/nvr-ai/go-iconforge/quadrant"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "iconforge.yaml"

// Config represents the application configuration.
type Config struct {
	Icons IconsConfig `yaml:"icons"`
	Slice SliceConfig `yaml:"slice"`
}

// IconsConfig configures the icons command.
type IconsConfig struct {
	Source    string       `yaml:"source"`
	OutputDir string       `yaml:"output_dir"`
	Cutout    bool         `yaml:"cutout"`
	Fuzz      int          `yaml:"fuzz"`
	Stretch   bool         `yaml:"stretch"`
	Resampler string       `yaml:"resampler"`
	Specs     []icons.Spec `yaml:"specs"`
}

// SliceConfig configures the slice command.
type SliceConfig struct {
	Source    string `yaml:"source"`
	OutputDir string `yaml:"output_dir"`
	Quality   int    `yaml:"quality"`
}

// Default returns the configuration used when no file is present: the
// package defaults of icons, cutout and quadrant.
func Default() *Config {
	return &Config{
		Icons: IconsConfig{
			Source:    icons.DefaultSource,
			OutputDir: icons.DefaultOutputDir,
			Cutout:    true,
			Fuzz:      int(cutout.DefaultFuzz),
			Resampler: icons.ScalerLanczos,
			Specs:     icons.DefaultSpecs(),
		},
		Slice: SliceConfig{
			Source:    quadrant.DefaultSource,
			OutputDir: quadrant.DefaultOutputDir,
			Quality:   quadrant.DefaultQuality,
		},
	}
}

// Load reads the file at path over Default. Keys missing from the file keep
// their default; a specs list replaces the default table as a whole.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	cfg.Icons.Specs = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if len(cfg.Icons.Specs) == 0 {
		cfg.Icons.Specs = icons.DefaultSpecs()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// LoadOptional loads path if it exists and returns Default otherwise. A
// missing file is only an error when required is set.
func LoadOptional(path string, required bool) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !required {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Icons.Source == "" {
		return errors.New("icons.source is required")
	}
	if c.Icons.OutputDir == "" {
		return errors.New("icons.output_dir is required")
	}
	if c.Icons.Fuzz < 0 || c.Icons.Fuzz > 255 {
		return errors.Errorf("icons.fuzz %d outside [0, 255]", c.Icons.Fuzz)
	}
	if _, err := icons.ScalerByName(c.Icons.Resampler); err != nil {
		return errors.Wrap(err, "icons.resampler")
	}
	if err := icons.ValidateSpecs(c.Icons.Specs); err != nil {
		return errors.Wrap(err, "icons.specs")
	}
	if c.Slice.Source == "" {
		return errors.New("slice.source is required")
	}
	if c.Slice.Quality < 1 || c.Slice.Quality > 100 {
		return errors.Errorf("slice.quality %d outside [1, 100]", c.Slice.Quality)
	}
	return nil
}
