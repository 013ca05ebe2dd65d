// Package config loads warbler settings from warbler.yml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for when no path is given.
const FileName = "warbler.yml"

// EnvPrefix prefixes environment overrides, e.g. WARBLER_MAX_ATTEMPTS.
const EnvPrefix = "WARBLER"

// Config represents warbler.yml configuration
type Config struct {
	MaxAttempts int              `mapstructure:"max_attempts" yaml:"max_attempts" toml:"max_attempts"`
	Marker      string           `mapstructure:"marker" yaml:"marker" toml:"marker"`
	Theme       terminal.Palette `mapstructure:"theme" yaml:"theme" toml:"theme"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		MaxAttempts: 10,
		Marker:      "> ",
		Theme:       terminal.DefaultPalette(),
	}
}

// Load reads the config at path. With an empty path it searches the
// working directory and $HOME/.config/warbler for warbler.yml or
// warbler.toml, falling back to Default() when neither has one.
// Environment variables override files.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		// The parser follows the extension of whichever file is found.
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "warbler"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values prompts cannot work with.
func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.Marker == "" {
		return errors.New("config: marker must not be empty")
	}
	return nil
}

// Write saves cfg at path, as TOML when path ends in .toml and as YAML
// otherwise. Load reads either.
func Write(path string, cfg *Config) error {
	marshal := yaml.Marshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		marshal = toml.Marshal
	}

	data, err := marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// setDefaults registers every key so environment overrides apply even
// when the file does not mention them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("max_attempts", d.MaxAttempts)
	v.SetDefault("marker", d.Marker)
	v.SetDefault("theme.question", d.Theme.Question)
	v.SetDefault("theme.hint", d.Theme.Hint)
	v.SetDefault("theme.marker", d.Theme.Marker)
	v.SetDefault("theme.error", d.Theme.Error)
	v.SetDefault("theme.title", d.Theme.Title)
}
