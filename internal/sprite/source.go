package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// ErrNotFound is returned when a source has no image for a name/index.
var ErrNotFound = errors.New("sprite: frame not found")

// Source provides raw frame images by base name and zero-based frame index.
type Source interface {
	Frame(name string, index int) (image.Image, error)
}

// Sheet is a Source parsed from a YAML sprite sheet. Each frame is a block of
// text rows; every character is looked up in the sprite's palette, and '.'
// or ' ' are transparent.
//
//	sprites:
//	  PlayerRobot:
//	    palette:
//	      "#": "#ffffff"
//	    frames:
//	      - |
//	        .##.
//	        ####
type Sheet struct {
	frames map[string][]image.Image
}

type sheetFile struct {
	Sprites map[string]sheetSprite `yaml:"sprites"`
}

type sheetSprite struct {
	Palette map[string]string `yaml:"palette"`
	Frames  []string          `yaml:"frames"`
}

// ParseSheet decodes a YAML sprite sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sprite: cannot parse sheet: %w", err)
	}

	sheet := &Sheet{frames: make(map[string][]image.Image, len(f.Sprites))}
	for name, spr := range f.Sprites {
		palette, err := parsePalette(spr.Palette)
		if err != nil {
			return nil, fmt.Errorf("sprite: %s: %w", name, err)
		}
		for i, raw := range spr.Frames {
			img, err := decodeFrame(raw, palette)
			if err != nil {
				return nil, fmt.Errorf("sprite: %s frame %d: %w", name, i, err)
			}
			sheet.frames[name] = append(sheet.frames[name], img)
		}
	}
	return sheet, nil
}

// Frame implements Source.
func (s *Sheet) Frame(name string, index int) (image.Image, error) {
	frames := s.frames[name]
	if index < 0 || index >= len(frames) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrNotFound, name, index)
	}
	return frames[index], nil
}

// Names returns the sprite names in the sheet.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.frames))
	for n := range s.frames {
		names = append(names, n)
	}
	return names
}

func parsePalette(raw map[string]string) (map[rune]color.NRGBA, error) {
	palette := map[rune]color.NRGBA{
		'.': {},
		' ': {},
	}
	for key, hex := range raw {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("palette key %q must be a single character", key)
		}
		c, err := core.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette key %q: %w", key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		palette[r] = c.NRGBA()
	}
	return palette, nil
}

func decodeFrame(raw string, palette map[rune]color.NRGBA) (*image.NRGBA, error) {
	rows := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, errors.New("empty frame")
	}

	w := utf8.RuneCountInString(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", y, n, w)
		}
		x := 0
		for _, r := range row {
			px, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("row %d: character %q not in palette", y, r)
			}
			img.SetNRGBA(x, y, px)
			x++
		}
	}
	return img, nil
}

// Dir is a Source reading PNG files named <name><n>.png from a directory,
// where n is the one-based frame number.
type Dir string

// Frame implements Source.
func (d Dir) Frame(name string, index int) (image.Image, error) {
	path := filepath.Join(string(d), fmt.Sprintf("%s%d.png", name, index+1))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("sprite: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot decode %s: %w", path, err)
	}
	return img, nil
}
