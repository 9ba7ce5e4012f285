package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". Tiled writes tints as
// "#aarrggbb"; use ParseTiledColor for those.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
	}

	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// ParseTiledColor parses Tiled's "#rrggbb" / "#aarrggbb" color strings.
func ParseTiledColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 8 {
		hex = hex[2:] + hex[:2]
	}
	return ParseHexColor(hex)
}
