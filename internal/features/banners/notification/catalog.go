package notification

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"banner-studio/internal/features/banners/domain"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// MessageID names an entry of the message catalog.
type MessageID string

const (
	MsgTitleUpdated           MessageID = "TitleUpdated"
	MsgBodyUpdated            MessageID = "BodyUpdated"
	MsgLanguageUpdated        MessageID = "LanguageUpdated"
	MsgFontUpdated            MessageID = "FontUpdated"
	MsgTextColorUpdated       MessageID = "TextColorUpdated"
	MsgBackgroundColorUpdated MessageID = "BackgroundColorUpdated"
	MsgBackgroundImageUpdated MessageID = "BackgroundImageUpdated"
	MsgBackgroundImageRemoved MessageID = "BackgroundImageRemoved"
	MsgOverlayOpacityUpdated  MessageID = "OverlayOpacityUpdated"
	MsgLowContrastWarning     MessageID = "LowContrastWarning"
)

var confirmations = map[domain.ActionKind]MessageID{
	domain.ActionSetTitle:              MsgTitleUpdated,
	domain.ActionSetBody:               MsgBodyUpdated,
	domain.ActionSetLanguage:           MsgLanguageUpdated,
	domain.ActionSetFont:               MsgFontUpdated,
	domain.ActionSetTextColor:          MsgTextColorUpdated,
	domain.ActionSetBackgroundColor:    MsgBackgroundColorUpdated,
	domain.ActionSetBackgroundImage:    MsgBackgroundImageUpdated,
	domain.ActionRemoveBackgroundImage: MsgBackgroundImageRemoved,
	domain.ActionSetOverlayOpacity:     MsgOverlayOpacityUpdated,
}

// ConfirmationFor returns the confirmation message of an action kind.
// Dismissal has no confirmation.
func ConfirmationFor(kind domain.ActionKind) (MessageID, bool) {
	id, ok := confirmations[kind]
	return id, ok
}

// Catalog resolves message ids to text in one locale, falling back to English.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded message files.
func NewCatalog(locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", f.Name())); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", f.Name(), err)
		}
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, locale, language.English.String())}, nil
}

// Message returns the localized text of id, or the id itself if it is unknown.
func (c *Catalog) Message(id MessageID) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: string(id)})
	if err != nil {
		return string(id)
	}
	return msg
}
