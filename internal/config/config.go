// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// Config contains all tunable parameters of the game.
// Level content (spawn positions) is deliberately not configurable.
type Config struct {
	Display    Display    `yaml:"display"`
	Player     Player     `yaml:"player"`
	Enemy      Enemy      `yaml:"enemy"`
	Sprite     Sprite     `yaml:"sprite"`
	Projectile Projectile `yaml:"projectile"`
	Input      Input      `yaml:"input"`
}

// Display defines the arena and presentation.
type Display struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // Arena width in world pixels
	Height     int    `yaml:"height"` // Arena height in world pixels
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
	TextColor  string `yaml:"text_color"`
}

// Player defines the player character.
type Player struct {
	Speed float64 `yaml:"speed"` // Pixels per tick per held direction
	Tint  string  `yaml:"tint"`
}

// Enemy defines the pursuing enemies. Each enemy draws its own speed from
// [MinSpeed, MaxSpeed] when spawned.
type Enemy struct {
	Tint     string  `yaml:"tint"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// Sprite defines the shared entity artwork.
type Sprite struct {
	Asset          string  `yaml:"asset"`           // Base name passed to the asset source
	Frames         int     `yaml:"frames"`          // Frames per animation
	Size           int     `yaml:"size"`            // Square source size in pixels
	Scale          int     `yaml:"scale"`           // Integer upscale factor
	AnimationSpeed float64 `yaml:"animation_speed"` // Frame progress per moving tick
}

// Projectile defines player shots.
type Projectile struct {
	Speed            float64 `yaml:"speed"` // Pixels per tick
	Radius           float64 `yaml:"radius"`
	Color            string  `yaml:"color"`
	DespawnOffscreen bool    `yaml:"despawn_offscreen"`
}

// Input defines platform input emulation.
type Input struct {
	// KeyHoldMS is how long a direction stays held after its last key press.
	// Terminals report presses and auto-repeat but not releases.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// Colors holds the parsed color fields of a Config.
type Colors struct {
	Background core.Color
	Text       core.Color
	Player     core.Color
	Enemy      core.Color
	Projectile core.Color
}

// Colors parses every hex color in the config.
func (c Config) Colors() (Colors, error) {
	var out Colors
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"display.background", c.Display.Background, &out.Background},
		{"display.text_color", c.Display.TextColor, &out.Text},
		{"player.tint", c.Player.Tint, &out.Player},
		{"enemy.tint", c.Enemy.Tint, &out.Enemy},
		{"projectile.color", c.Projectile.Color, &out.Projectile},
	}
	for _, f := range fields {
		col, err := core.ParseHex(f.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return out, nil
}

// Validate reports every invalid field in the config.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("display.width", float64(c.Display.Width))
	positive("display.height", float64(c.Display.Height))
	positive("display.fps", float64(c.Display.FPS))
	positive("player.speed", c.Player.Speed)
	positive("enemy.min_speed", c.Enemy.MinSpeed)
	positive("enemy.max_speed", c.Enemy.MaxSpeed)
	if c.Enemy.MinSpeed > c.Enemy.MaxSpeed {
		errs = append(errs, fmt.Errorf("enemy.min_speed %v exceeds enemy.max_speed %v",
			c.Enemy.MinSpeed, c.Enemy.MaxSpeed))
	}
	if c.Sprite.Asset == "" {
		errs = append(errs, errors.New("sprite.asset must be set"))
	}
	positive("sprite.frames", float64(c.Sprite.Frames))
	positive("sprite.size", float64(c.Sprite.Size))
	positive("sprite.scale", float64(c.Sprite.Scale))
	positive("sprite.animation_speed", c.Sprite.AnimationSpeed)
	positive("projectile.speed", c.Projectile.Speed)
	positive("projectile.radius", c.Projectile.Radius)
	if c.Input.KeyHoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.key_hold_ms must not be negative, got %d", c.Input.KeyHoldMS))
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
