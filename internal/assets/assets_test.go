package assets

import (
	"testing"

	"github.com/vovakirdan/tui-topdown/internal/sprite"
)

func TestDefaultSheetHasRobotFrames(t *testing.T) {
	sheet, err := DefaultSheet()
	if err != nil {
		t.Fatalf("DefaultSheet() failed: %v", err)
	}

	frames, err := sprite.LoadFrames(sheet, sprite.FrameSpec{
		Name:  "PlayerRobot",
		Count: 4,
		Size:  16,
		Scale: 3,
	})
	if err != nil {
		t.Fatalf("LoadFrames() failed: %v", err)
	}

	for i, f := range frames {
		if f.Bounds().Dx() != 48 || f.Bounds().Dy() != 48 {
			t.Errorf("frame %d is %v, expected 48x48", i, f.Bounds())
		}
	}
}
