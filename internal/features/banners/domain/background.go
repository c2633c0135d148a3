package domain

// BackgroundKind tags which variant of Background is visible.
type BackgroundKind string

const (
	BackgroundSolid BackgroundKind = "solid"
	BackgroundImage BackgroundKind = "image"
)

// Background is either a solid color or an image. The solid color is kept
// while an image is shown so that removing the image restores it.
type Background struct {
	Kind  BackgroundKind `json:"kind"`
	Color Color          `json:"color"`
	Image *ImageResource `json:"image,omitempty"`
}

// SolidBackground returns a solid color background.
func SolidBackground(c Color) Background {
	return Background{Kind: BackgroundSolid, Color: c}
}

// HasImage reports whether the image variant is active.
func (b Background) HasImage() bool {
	return b.Kind == BackgroundImage && b.Image != nil
}

// WithImage switches to the image variant, remembering the current solid color.
func (b Background) WithImage(img ImageResource) Background {
	return Background{Kind: BackgroundImage, Color: b.Color, Image: &img}
}

// WithoutImage reverts to the remembered solid color.
func (b Background) WithoutImage() Background {
	return SolidBackground(b.Color)
}

// Effective returns the color used for contrast checks. Images count as black.
func (b Background) Effective() Color {
	if b.HasImage() {
		return Black
	}
	return b.Color
}
