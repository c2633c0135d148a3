package domain

import (
	"fmt"
	"strings"
)

// Font is a CSS font-family value from the font catalog.
type Font string

const (
	FontPlayfairDisplay Font = "Playfair Display, serif"
	FontArial           Font = "Arial, sans-serif"
	FontCourierNew      Font = "Courier New, monospace"
	FontGeorgia         Font = "Georgia, serif"
	FontPoppins         Font = "Poppins, serif"
)

// FontOption pairs a catalog font with its display label.
type FontOption struct {
	Label string `json:"label"`
	Value Font   `json:"value"`
}

// Fonts is the font catalog in display order.
var Fonts = []FontOption{
	{Label: "Playfair Display", Value: FontPlayfairDisplay},
	{Label: "Arial", Value: FontArial},
	{Label: "Courier New", Value: FontCourierNew},
	{Label: "Georgia", Value: FontGeorgia},
	{Label: "Poppins", Value: FontPoppins},
}

// ParseFont accepts either the font-family value or the label of a catalog font.
func ParseFont(s string) (Font, error) {
	needle := strings.TrimSpace(s)
	for _, opt := range Fonts {
		if strings.EqualFold(needle, string(opt.Value)) || strings.EqualFold(needle, opt.Label) {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFont, s)
}
