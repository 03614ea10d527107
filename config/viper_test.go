package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	if err := InitConfig(""); err != nil {
		t.Fatalf("InitConfig() returned error: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.TPS != 60 || cfg.Controller != "kinematic" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.Prefabs.HotReload || cfg.Prefabs.Dir != "prefabs" {
		t.Fatalf("unexpected prefab defaults %+v", cfg.Prefabs)
	}
	if cfg.TickDuration() != time.Second/60 {
		t.Fatalf("tick duration = %v", cfg.TickDuration())
	}
}

func TestInitConfig_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "flapper.yaml")

	content := []byte("controller: rigid\nwindow:\n  width: 320\nlog:\n  level: debug\n")
	if err := os.WriteFile(configFile, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	viper.Reset()
	if err := InitConfig(configFile); err != nil {
		t.Fatalf("InitConfig() returned error: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Controller != "rigid" {
		t.Fatalf("controller = %q, want rigid", cfg.Controller)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 540 {
		t.Fatalf("window = %+v, want 320x540", cfg.Window)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestInitConfig_MissingFile(t *testing.T) {
	viper.Reset()
	if err := InitConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for an explicit missing file")
	}
}

func TestInitConfig_EnvironmentVariables(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("FLAPPER_TPS", "30")
	t.Setenv("FLAPPER_PREFABS_HOT_RELOAD", "false")

	if err := InitConfig(""); err != nil {
		t.Fatalf("InitConfig() returned error: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.TPS != 30 {
		t.Fatalf("tps = %d, want 30 from env", cfg.TPS)
	}
	if cfg.Prefabs.HotReload {
		t.Fatalf("hot reload should be disabled from env")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Window: WindowConfig{Width: 10, Height: 10}, TPS: 0}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
