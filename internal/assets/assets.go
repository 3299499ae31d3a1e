// Package assets embeds the default sprite sheet so the game runs without any
// files next to the binary.
package assets

import (
	_ "embed"

	"github.com/vovakirdan/tui-topdown/internal/sprite"
)

//go:embed sprites.yaml
var spritesYAML []byte

// DefaultSheet parses the embedded sprite sheet.
func DefaultSheet() (*sprite.Sheet, error) {
	return sprite.ParseSheet(spritesYAML)
}
