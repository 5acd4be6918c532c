// Package config handles the daysignal.toml configuration file and its
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration. Values come from defaults, then the
// config file, then DAYSIGNAL_* environment variables, each layer
// overriding the last.
type Config struct {
	// DataPath is the SQLite file holding all application state.
	DataPath string `toml:"data-path"`

	// ReminderInterval is how often the periodic pending-work check runs.
	ReminderInterval time.Duration `toml:"-"`

	// ReminderIntervalMinutes is the file-facing form of ReminderInterval.
	ReminderIntervalMinutes int `toml:"reminder-interval-minutes"`

	// PendingThreshold is the pending-count a day must exceed before
	// reminders fire.
	PendingThreshold int `toml:"pending-threshold"`

	// DesktopNotifications enables delivery through the platform
	// notification tool.
	DesktopNotifications bool `toml:"desktop-notifications"`

	// Theme names the color theme used by the terminal UI.
	Theme string `toml:"theme"`
}

func Default() Config {
	return Config{
		DataPath:                defaultDataPath(),
		ReminderInterval:        2 * time.Minute,
		ReminderIntervalMinutes: 2,
		PendingThreshold:        2,
		DesktopNotifications:    false,
		Theme:                   "dark",
	}
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "daysignal.db"
	}
	return filepath.Join(home, ".local", "share", "daysignal", "daysignal.db")
}

// Load builds the effective configuration: defaults, then the global
// config file if present, then environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path, err := globalConfigPath()
	if err == nil {
		cfg, err = loadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}

	return FromEnv(cfg), nil
}

func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "daysignal", "config.toml"), nil
}

func loadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := base
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return normalize(cfg), nil
}

// FromEnv applies DAYSIGNAL_* environment overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("DAYSIGNAL_DATA_PATH")); v != "" {
		cfg.DataPath = v
	}
	if v, ok := getEnvInt("DAYSIGNAL_REMINDER_INTERVAL_MINUTES"); ok && v > 0 {
		cfg.ReminderIntervalMinutes = v
	}
	if v, ok := getEnvInt("DAYSIGNAL_PENDING_THRESHOLD"); ok && v >= 0 {
		cfg.PendingThreshold = v
	}
	if v, ok := getEnvBool("DAYSIGNAL_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("DAYSIGNAL_THEME")); v != "" {
		cfg.Theme = v
	}
	return normalize(cfg)
}

// normalize keeps the duration field in step with the minutes field and
// clamps nonsense values back to defaults.
func normalize(cfg Config) Config {
	if cfg.ReminderIntervalMinutes <= 0 {
		cfg.ReminderIntervalMinutes = 2
	}
	cfg.ReminderInterval = time.Duration(cfg.ReminderIntervalMinutes) * time.Minute
	if cfg.PendingThreshold < 0 {
		cfg.PendingThreshold = 2
	}
	if strings.TrimSpace(cfg.DataPath) == "" {
		cfg.DataPath = defaultDataPath()
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
