package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.ReminderInterval != 2*time.Minute || cfg.ReminderIntervalMinutes != 2 {
		t.Fatalf("unexpected reminder defaults: %+v", cfg)
	}
	if cfg.PendingThreshold != 2 {
		t.Fatalf("unexpected threshold default: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatal("desktop notifications should default off")
	}
	if cfg.Theme != "dark" {
		t.Fatalf("unexpected theme default: %q", cfg.Theme)
	}
	if cfg.DataPath == "" {
		t.Fatal("data path default must not be empty")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DAYSIGNAL_DATA_PATH", "custom/signal.db")
	t.Setenv("DAYSIGNAL_REMINDER_INTERVAL_MINUTES", "5")
	t.Setenv("DAYSIGNAL_PENDING_THRESHOLD", "4")
	t.Setenv("DAYSIGNAL_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("DAYSIGNAL_THEME", "light")

	cfg := FromEnv(Default())
	if cfg.DataPath != "custom/signal.db" {
		t.Fatalf("unexpected data path: %q", cfg.DataPath)
	}
	if cfg.ReminderInterval != 5*time.Minute {
		t.Fatalf("unexpected interval: %v", cfg.ReminderInterval)
	}
	if cfg.PendingThreshold != 4 {
		t.Fatalf("unexpected threshold: %d", cfg.PendingThreshold)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications on from env")
	}
	if cfg.Theme != "light" {
		t.Fatalf("unexpected theme: %q", cfg.Theme)
	}
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DAYSIGNAL_REMINDER_INTERVAL_MINUTES", "zero")
	t.Setenv("DAYSIGNAL_PENDING_THRESHOLD", "-3")
	t.Setenv("DAYSIGNAL_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := FromEnv(Default())
	if cfg != Default() {
		t.Fatalf("invalid env values changed config: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
data-path = "from-file.db"
reminder-interval-minutes = 10
pending-threshold = 1
desktop-notifications = true
theme = "light"
`)

	cfg, err := loadFile(Default(), path)
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if cfg.DataPath != "from-file.db" || cfg.ReminderInterval != 10*time.Minute {
		t.Fatalf("unexpected config from file: %+v", cfg)
	}
	if cfg.PendingThreshold != 1 || !cfg.DesktopNotifications || cfg.Theme != "light" {
		t.Fatalf("unexpected config from file: %+v", cfg)
	}
}

func TestLoadFileMissingIsDefault(t *testing.T) {
	cfg, err := loadFile(Default(), filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadFile: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file should yield base config, got %+v", cfg)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "data-path = [broken")

	if _, err := loadFile(Default(), path); err == nil {
		t.Fatal("malformed file should error")
	}
}

func TestNormalizeClampsNonsense(t *testing.T) {
	cfg := normalize(Config{ReminderIntervalMinutes: -1, PendingThreshold: -9})
	if cfg.ReminderInterval != 2*time.Minute || cfg.PendingThreshold != 2 {
		t.Fatalf("normalize did not clamp: %+v", cfg)
	}
	if cfg.DataPath == "" {
		t.Fatal("normalize should restore the data path default")
	}
}
