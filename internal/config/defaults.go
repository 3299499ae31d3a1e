package config

import (
	_ "embed"
)

//go:embed defaults/topdown.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			Title:      "Top-Down Game",
			Width:      800,
			Height:     600,
			FPS:        60,
			Background: "#000000",
			TextColor:  "#ffffff",
		},
		Player: Player{
			Speed: 2,
			Tint:  "#00ffff",
		},
		Enemy: Enemy{
			Tint:     "#ff0000",
			MinSpeed: 0.6,
			MaxSpeed: 1.4,
		},
		Sprite: Sprite{
			Asset:          "PlayerRobot",
			Frames:         4,
			Size:           16,
			Scale:          3,
			AnimationSpeed: 0.05,
		},
		Projectile: Projectile{
			Speed:            8,
			Radius:           5,
			Color:            "#ffff00",
			DespawnOffscreen: true,
		},
		Input: Input{
			KeyHoldMS: 150,
		},
	}
}
