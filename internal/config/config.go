package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/store"
	"github.com/julianstephens/routinely/internal/utils"
	"github.com/julianstephens/routinely/internal/validation"
)

// RoutineConfig declares a routine the store is seeded with at startup.
type RoutineConfig struct {
	// Title is the routine's display name.
	Title string `mapstructure:"title" yaml:"title"`

	// NotifyAt is the reminder time as HH:MM. Empty means no reminder.
	NotifyAt string `mapstructure:"notify_at" yaml:"notify_at"`

	// Weekdays lists the reminder days, e.g. "mon,wed,fri", "weekdays" or "daily".
	Weekdays string `mapstructure:"weekdays" yaml:"weekdays"`
}

// Config is the top-level application configuration.
type Config struct {
	// Timezone is an IANA name or "Local"; it decides where calendar days start.
	Timezone string `mapstructure:"timezone" yaml:"timezone"`

	Debug bool `mapstructure:"debug" yaml:"debug"`

	// LogDir holds the rotating log file. Defaults to a logs/ directory next to the config file.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir"`

	// SeedDefaults seeds the built-in example routines when Routines is empty.
	SeedDefaults bool `mapstructure:"seed_defaults" yaml:"seed_defaults"`

	Routines []RoutineConfig `mapstructure:"routines" yaml:"routines"`
}

func defaultConfig(path string) *Config {
	return &Config{
		Timezone:     "Local",
		LogDir:       filepath.Join(filepath.Dir(path), constants.DefaultLogDirName),
		SeedDefaults: true,
		Routines:     []RoutineConfig{},
	}
}

// Load reads the YAML config at path using Viper. A missing file yields the
// defaults. Any key can be overridden with a ROUTINELY_ environment variable,
// e.g. ROUTINELY_TIMEZONE.
func Load(path string) (*Config, error) {
	def := defaultConfig(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", def.LogDir)
	v.SetDefault("seed_defaults", def.SeedDefaults)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := def
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if !utils.ValidateTimezone(cfg.Timezone) {
		return nil, fmt.Errorf("invalid timezone %q in %s", cfg.Timezone, path)
	}

	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

// Seeds converts the configured routines into store seeds. Invalid entries
// are reported with their position so the user can find them in the file.
func (c *Config) Seeds() ([]store.Seed, error) {
	if len(c.Routines) == 0 {
		if c.SeedDefaults {
			return store.DefaultSeeds(), nil
		}
		return nil, nil
	}

	seeds := make([]store.Seed, 0, len(c.Routines))
	for i, r := range c.Routines {
		if err := validation.ValidateTitle(r.Title); err != nil {
			return nil, fmt.Errorf("routines[%d]: %w", i, err)
		}
		n, err := validation.ParseNotification(r.NotifyAt, r.Weekdays)
		if err != nil {
			return nil, fmt.Errorf("routines[%d] %q: %w", i, r.Title, err)
		}
		seeds = append(seeds, store.Seed{Title: r.Title, Notification: n})
	}
	return seeds, nil
}
