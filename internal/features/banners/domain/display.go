package domain

// DisplayState holds values derived from BannerConfig for rendering.
type DisplayState struct {
	DisplayTitle    string `json:"display_title"`
	DisplayBody     string `json:"display_body"`
	ContrastWarning bool   `json:"contrast_warning"`
}

// Options lists the choices the presentation layer offers.
type Options struct {
	Fonts             []FontOption  `json:"fonts"`
	BackgroundPresets []ColorPreset `json:"background_presets"`
	TextColorPresets  []ColorPreset `json:"text_color_presets"`
	Languages         []Language    `json:"languages"`
}

// NewOptions returns the font catalog, both color palettes and the two languages.
func NewOptions(languages Languages) Options {
	return Options{
		Fonts:             Fonts,
		BackgroundPresets: BackgroundPresets,
		TextColorPresets:  TextColorPresets,
		Languages:         []Language{languages.Native, languages.Target},
	}
}

// Snapshot is everything the presentation layer reads in one call.
type Snapshot struct {
	Config       BannerConfig  `json:"config"`
	Display      DisplayState  `json:"display"`
	Notification *Notification `json:"notification,omitempty"`
	Visibility   Visibility    `json:"visibility"`
}
