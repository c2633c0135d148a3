package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	// Black is the color used as the effective background behind an image.
	Black = Color{}
	// White is the default text color.
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// ParseColor parses "#rrggbb" or "#rgb", case-insensitively.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex = hex[1:]

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseColor is ParseColor for package-level literals. It panics on bad input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Packed returns the color as a single 0xRRGGBB integer.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String returns the lowercase "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorPreset is a named background color offered to the presentation layer.
type ColorPreset struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// DefaultBackgroundColor is the initial solid background.
var DefaultBackgroundColor = MustParseColor("#2c3e50")

// BackgroundPresets lists the palette shown by the background selector.
var BackgroundPresets = []ColorPreset{
	{Name: "Default", Color: DefaultBackgroundColor},
	{Name: "Teal", Color: MustParseColor("#1abc9c")},
	{Name: "Red", Color: MustParseColor("#e74c3c")},
	{Name: "Purple", Color: MustParseColor("#8e44ad")},
	{Name: "Orange", Color: MustParseColor("#f39c12")},
}

// TextColorPresets lists the palette shown by the text color dropdown.
var TextColorPresets = []ColorPreset{
	{Name: "White", Color: White},
	{Name: "Black", Color: Black},
	{Name: "Red", Color: MustParseColor("#ff0000")},
	{Name: "Yellow", Color: MustParseColor("#f1c40f")},
	{Name: "Teal", Color: MustParseColor("#1abc9c")},
}
