package domain

import "errors"

var (
	// ErrInvalidColor is returned when a color is not a #rgb or #rrggbb hex string.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnsupportedFont is returned when a font is not part of the font catalog.
	ErrUnsupportedFont = errors.New("unsupported font")
	// ErrUnsupportedLanguage is returned for language codes other than the native and target ones.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrImageBackgroundActive is returned when a solid color is set while an image backs the banner.
	ErrImageBackgroundActive = errors.New("background image is active")
	// ErrNoBackgroundImage is returned when removing an image that is not set.
	ErrNoBackgroundImage = errors.New("no background image")
	// ErrDismissed is returned for any mutation attempted after the banner was dismissed.
	ErrDismissed = errors.New("banner dismissed")

	// ErrInvalidMimeType is the reason of a ValidationError for uploads that are not png or jpeg.
	ErrInvalidMimeType = errors.New("invalid mime type")
	// ErrFileTooLarge is the reason of a ValidationError for uploads above the size limit.
	ErrFileTooLarge = errors.New("file too large")
)
