package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// isolate points the search directories at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Player.Speed != 5 {
		t.Errorf("player.speed = %v, expected 5", cfg.Player.Speed)
	}
	if cfg.Player.Tint != "#00ffff" || cfg.Display.Width != 800 {
		t.Error("keys absent from the custom file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("unparsable custom config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local ./configs file
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("display:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("local config not used, fps = %d", cfg.Display.FPS)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, ".topdown", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("display:\n  fps: 45\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.FPS != 45 {
		t.Errorf("user config should take precedence, fps = %d", cfg.Display.FPS)
	}

	// A broken user config is skipped
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("display: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("broken user config should fall through to local, fps = %d", cfg.Display.FPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "display.width"},
		{"negative speed", func(c *Config) { c.Player.Speed = -1 }, "player.speed"},
		{"min above max", func(c *Config) { c.Enemy.MinSpeed = 3 }, "enemy.min_speed"},
		{"no asset", func(c *Config) { c.Sprite.Asset = "" }, "sprite.asset"},
		{"zero scale", func(c *Config) { c.Sprite.Scale = 0 }, "sprite.scale"},
		{"bad color", func(c *Config) { c.Projectile.Color = "yellow" }, "projectile.color"},
		{"negative hold", func(c *Config) { c.Input.KeyHoldMS = -5 }, "input.key_hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestColors(t *testing.T) {
	colors, err := DefaultConfig().Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	if colors.Player != core.ColorCyan || colors.Enemy != core.ColorRed || colors.Projectile != core.ColorYellow {
		t.Errorf("unexpected colors %+v", colors)
	}
}

func TestDifficultyPresets(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v; expected normal", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	cfg := DefaultConfig()
	minSpeed, maxSpeed := cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Enemy.MinSpeed != minSpeed*1.5 || cfg.Enemy.MaxSpeed != maxSpeed*1.5 {
		t.Errorf("hard preset speeds = [%v, %v]", cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed)
	}

	cfg = DefaultConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != DefaultConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestMarshalIncludesProjectilePolicy(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "despawn_offscreen: true") {
		t.Errorf("marshalled config missing projectile policy:\n%s", data)
	}
}
