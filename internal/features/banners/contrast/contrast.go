// Package contrast computes a readability verdict for text on a background.
//
// The default "legacy" model treats the packed 0xRRGGBB value of a color as its
// brightness. It is a directional signal only and does not claim WCAG
// compliance. The "wcag" model uses sRGB relative luminance.
package contrast

import (
	"fmt"
	"math"

	"banner-studio/internal/features/banners/domain"
)

// DefaultThreshold is the minimum ratio for normal text (WCAG AA).
const DefaultThreshold = 4.5

const (
	ModelLegacy = "legacy"
	ModelWCAG   = "wcag"
)

// LuminanceFunc maps a color into [0,1].
type LuminanceFunc func(domain.Color) float64

// Validator implements ports.ContrastModel with a pluggable luminance proxy.
type Validator struct {
	luminance LuminanceFunc
	threshold float64
}

// NewValidator builds a Validator for a named model.
func NewValidator(model string, threshold float64) (*Validator, error) {
	switch model {
	case ModelLegacy, "":
		return &Validator{luminance: PackedLuminance, threshold: threshold}, nil
	case ModelWCAG:
		return &Validator{luminance: RelativeLuminance, threshold: threshold}, nil
	}
	return nil, fmt.Errorf("unknown contrast model %q", model)
}

// NewLegacyValidator uses the packed-integer luminance proxy.
func NewLegacyValidator(threshold float64) *Validator {
	return &Validator{luminance: PackedLuminance, threshold: threshold}
}

// Threshold returns the minimum accepted ratio.
func (v *Validator) Threshold() float64 {
	return v.threshold
}

// Ratio returns (max+0.05)/(min+0.05) of the two luminances. It is symmetric.
func (v *Validator) Ratio(a, b domain.Color) float64 {
	la, lb := v.luminance(a), v.luminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// IsReadable reports whether the ratio reaches the threshold.
func (v *Validator) IsReadable(foreground, background domain.Color) bool {
	return v.Ratio(foreground, background) >= v.threshold
}

// PackedLuminance reads the whole 24-bit color as one integer and normalises it.
func PackedLuminance(c domain.Color) float64 {
	return float64(c.Packed()) / float64(0xffffff)
}

// RelativeLuminance is the sRGB relative luminance used by WCAG 2.x.
func RelativeLuminance(c domain.Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
