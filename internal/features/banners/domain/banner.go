package domain

import "math"

const (
	DefaultTitle = "Passionate About Ideas? Let's Chat!"
	DefaultBody  = "I love communicating with people and engaging in intellectual conversations"

	// DefaultOverlayOpacity is the initial darkening applied over a background image.
	DefaultOverlayOpacity = 0.5
)

// BannerConfig is the authoritative state of the banner. Values are treated as
// immutable snapshots: every change goes through Apply and yields a new value.
type BannerConfig struct {
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	Language       Language   `json:"language"`
	Font           Font       `json:"font"`
	TextColor      Color      `json:"text_color"`
	Background     Background `json:"background"`
	OverlayOpacity float64    `json:"overlay_opacity"`
	Dismissed      bool       `json:"dismissed"`
}

// DefaultBannerConfig returns the banner as first shown.
func DefaultBannerConfig(lang Language) BannerConfig {
	return BannerConfig{
		Title:          DefaultTitle,
		Body:           DefaultBody,
		Language:       lang,
		Font:           FontPlayfairDisplay,
		TextColor:      White,
		Background:     SolidBackground(DefaultBackgroundColor),
		OverlayOpacity: DefaultOverlayOpacity,
	}
}

// ClampOpacity forces v into [0,1]. NaN maps to 0.
func ClampOpacity(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ActionKind names the field an Action changes.
type ActionKind string

const (
	ActionSetTitle              ActionKind = "title"
	ActionSetBody               ActionKind = "body"
	ActionSetLanguage           ActionKind = "language"
	ActionSetFont               ActionKind = "font"
	ActionSetTextColor          ActionKind = "text_color"
	ActionSetBackgroundColor    ActionKind = "background_color"
	ActionSetBackgroundImage    ActionKind = "background_image"
	ActionRemoveBackgroundImage ActionKind = "background_image_removed"
	ActionSetOverlayOpacity     ActionKind = "overlay_opacity"
	ActionDismiss               ActionKind = "dismiss"
)

// AffectsText reports whether the displayed text must be re-translated.
func (k ActionKind) AffectsText() bool {
	return k == ActionSetTitle || k == ActionSetBody || k == ActionSetLanguage
}

// AffectsContrast reports whether the readability verdict must be recomputed.
func (k ActionKind) AffectsContrast() bool {
	switch k {
	case ActionSetTextColor, ActionSetBackgroundColor, ActionSetBackgroundImage, ActionRemoveBackgroundImage:
		return true
	}
	return false
}

// Action is a single change to a BannerConfig.
type Action interface {
	Kind() ActionKind
	apply(cfg BannerConfig) (BannerConfig, error)
}

// Apply is the transition function of the banner. It never mutates cfg.
func Apply(cfg BannerConfig, a Action) (BannerConfig, error) {
	if cfg.Dismissed {
		return cfg, ErrDismissed
	}
	return a.apply(cfg)
}

type SetTitle struct{ Text string }

func (SetTitle) Kind() ActionKind { return ActionSetTitle }

func (a SetTitle) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Title = a.Text
	return cfg, nil
}

type SetBody struct{ Text string }

func (SetBody) Kind() ActionKind { return ActionSetBody }

func (a SetBody) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Body = a.Text
	return cfg, nil
}

type SetLanguage struct{ Language Language }

func (SetLanguage) Kind() ActionKind { return ActionSetLanguage }

func (a SetLanguage) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Language = a.Language
	return cfg, nil
}

type SetFont struct{ Font Font }

func (SetFont) Kind() ActionKind { return ActionSetFont }

func (a SetFont) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Font = a.Font
	return cfg, nil
}

type SetTextColor struct{ Color Color }

func (SetTextColor) Kind() ActionKind { return ActionSetTextColor }

func (a SetTextColor) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.TextColor = a.Color
	return cfg, nil
}

// SetBackgroundColor is refused while an image is the visible background.
type SetBackgroundColor struct{ Color Color }

func (SetBackgroundColor) Kind() ActionKind { return ActionSetBackgroundColor }

func (a SetBackgroundColor) apply(cfg BannerConfig) (BannerConfig, error) {
	if cfg.Background.HasImage() {
		return cfg, ErrImageBackgroundActive
	}
	cfg.Background = SolidBackground(a.Color)
	return cfg, nil
}

type SetBackgroundImage struct{ Image ImageResource }

func (SetBackgroundImage) Kind() ActionKind { return ActionSetBackgroundImage }

func (a SetBackgroundImage) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Background = cfg.Background.WithImage(a.Image)
	return cfg, nil
}

type RemoveBackgroundImage struct{}

func (RemoveBackgroundImage) Kind() ActionKind { return ActionRemoveBackgroundImage }

func (RemoveBackgroundImage) apply(cfg BannerConfig) (BannerConfig, error) {
	if !cfg.Background.HasImage() {
		return cfg, ErrNoBackgroundImage
	}
	cfg.Background = cfg.Background.WithoutImage()
	return cfg, nil
}

// SetOverlayOpacity clamps rather than rejects out-of-range values.
type SetOverlayOpacity struct{ Opacity float64 }

func (SetOverlayOpacity) Kind() ActionKind { return ActionSetOverlayOpacity }

func (a SetOverlayOpacity) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.OverlayOpacity = ClampOpacity(a.Opacity)
	return cfg, nil
}

type Dismiss struct{}

func (Dismiss) Kind() ActionKind { return ActionDismiss }

func (Dismiss) apply(cfg BannerConfig) (BannerConfig, error) {
	cfg.Dismissed = true
	return cfg, nil
}
