package sprite

import (
	"fmt"
	"image"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// FrameSpec describes the frames an entity needs from a Source.
type FrameSpec struct {
	Name  string     // Base asset name
	Count int        // Number of frames
	Size  int        // Expected square source size in pixels
	Scale int        // Integer upscale factor
	Tint  core.Color // Multiplicative tint applied after scaling
}

// LoadFrames fetches, validates, scales and tints spec.Count frames.
func LoadFrames(src Source, spec FrameSpec) ([]image.Image, error) {
	if spec.Count < 1 {
		return nil, fmt.Errorf("sprite: %s: frame count must be positive, got %d", spec.Name, spec.Count)
	}

	frames := make([]image.Image, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		raw, err := src.Frame(spec.Name, i)
		if err != nil {
			return nil, err
		}

		b := raw.Bounds()
		if b.Dx() != spec.Size || b.Dy() != spec.Size {
			return nil, fmt.Errorf("sprite: %s frame %d is %dx%d, expected %dx%d",
				spec.Name, i, b.Dx(), b.Dy(), spec.Size, spec.Size)
		}

		frames = append(frames, Tint(Scale(raw, spec.Scale), spec.Tint))
	}
	return frames, nil
}
