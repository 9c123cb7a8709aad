package utils

import (
	"fmt"
	"regexp"
)

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour as GL wants it.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

// ColourParse parses a #RRGGBBAA string.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{}, fmt.Errorf("%s is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{}, fmt.Errorf("could not parse colour %s: %w", s, err)
	}
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func to8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
