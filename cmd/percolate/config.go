package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// config holds the resolved CLI settings.
type config struct {
	Format  string `mapstructure:"format"`
	Grid    bool   `mapstructure:"grid"`
	Verbose bool   `mapstructure:"verbose"`
}

// loadConfig reads the config file (if any), binds PERCOLATE_* env vars and
// unmarshals the result. A missing default config file is not an error; a
// missing explicit --config file is.
func loadConfig(v *viper.Viper, cfgFile string) (config, error) {
	v.SetDefault("format", formatText)
	v.SetDefault("grid", false)
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".percolate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("PERCOLATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.Format {
	case formatText, formatYAML:
	default:
		return config{}, fmt.Errorf("config: unknown format %q (want %s or %s)", cfg.Format, formatText, formatYAML)
	}

	return cfg, nil
}

// newLogger returns a text slog.Logger on the command's stderr.
// Verbose lowers the level from Warn to Debug.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
