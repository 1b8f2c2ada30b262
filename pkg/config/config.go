// Package config resolves manifestmerge settings from defaults, an optional
// YAML config file and command-line flags.
package config

import (
	"fmt"
	"strings"

	"manifestmerge/pkg/merge"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultFormat    = string(merge.FormatJSON)
	DefaultExtension = ".md"
)

// Config holds the resolved settings for a merge run.
type Config struct {
	Format     string `mapstructure:"format"`
	Extension  string `mapstructure:"extension"`
	IgnoreFile string `mapstructure:"ignore_file"`
	Debug      bool   `mapstructure:"debug"`
}

// Load resolves configuration on v. When cfgFile is set it must exist and be
// readable; flags bound to v take precedence over its values.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the format and checks every field.
func (c *Config) Validate() error {
	format, err := merge.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = string(format)

	if strings.TrimSpace(c.Extension) == "" {
		return fmt.Errorf("document extension cannot be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("extension", DefaultExtension)
	v.SetDefault("ignore_file", "")
	v.SetDefault("debug", false)
}
