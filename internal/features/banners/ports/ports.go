package ports

import (
	"context"

	"banner-studio/internal/features/banners/domain"
)

// BannerService defines the primary port used by the presentation layer.
// Mutations on a dismissed banner are accepted and ignored.
type BannerService interface {
	Snapshot() domain.Snapshot
	Options() domain.Options
	SetTitle(ctx context.Context, title string) error
	SetBody(ctx context.Context, body string) error
	SetLanguage(ctx context.Context, code string) error
	SetFont(ctx context.Context, font string) error
	SetTextColor(ctx context.Context, color string) error
	SetBackgroundColor(ctx context.Context, color string) error
	SetBackgroundImage(ctx context.Context, file domain.UploadFile) error
	RemoveBackgroundImage(ctx context.Context) error
	SetOverlayOpacity(ctx context.Context, opacity float64) error
	ClearNotification()
	Dismiss(ctx context.Context) error
	OpenImage(ctx context.Context, id string) (*domain.Blob, error)
}

// TranslationProvider turns text into the given language. Implementations must
// return the input unchanged for the native language.
type TranslationProvider interface {
	Translate(ctx context.Context, text, languageCode string) (string, error)
}

// ContrastModel decides whether foreground text is readable on a background.
type ContrastModel interface {
	IsReadable(foreground, background domain.Color) bool
}

// BlobStore holds the bytes behind image access URLs.
type BlobStore interface {
	Put(ctx context.Context, id string, blob domain.Blob) error
	// Get returns an error wrapping ErrBlobNotFound for unknown or released ids.
	Get(ctx context.Context, id string) (*domain.Blob, error)
	Delete(ctx context.Context, id string) error
	// IDs lists every stored id.
	IDs(ctx context.Context) ([]string, error)
}
