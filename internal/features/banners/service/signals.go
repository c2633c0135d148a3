package service

import (
	"context"

	"banner-studio/internal/features/banners/translation"

	"github.com/zoobzio/capitan"
)

// Engine lifecycle signals.
var (
	// MutationApplied is emitted after an action changed the banner.
	MutationApplied = capitan.NewSignal(
		"banner.mutation.applied",
		"Banner mutation applied",
	)

	// MutationRejected is emitted when an action failed validation.
	MutationRejected = capitan.NewSignal(
		"banner.mutation.rejected",
		"Banner mutation rejected",
	)

	// TranslationDiscarded is emitted when a superseded translation result is dropped.
	TranslationDiscarded = capitan.NewSignal(
		"banner.translation.discarded",
		"Stale translation discarded",
	)

	// ResourceReleased is emitted when an image access URL is revoked.
	ResourceReleased = capitan.NewSignal(
		"banner.resource.released",
		"Background image released",
	)

	// BannerDismissed is emitted once, when the banner is dismissed.
	BannerDismissed = capitan.NewSignal(
		"banner.dismissed",
		"Banner dismissed",
	)
)

// Signal field keys.
var (
	KeyAction     = capitan.NewStringKey("action")
	KeyError      = capitan.NewStringKey("error")
	KeyField      = capitan.NewStringKey("field")
	KeyToken      = capitan.NewIntKey("token")
	KeyResourceID = capitan.NewStringKey("resource_id")
)

// EmitTranslationDiscarded is a translation.WithDiscardHook callback.
func EmitTranslationDiscarded(field translation.Field, token uint64) {
	capitan.Emit(context.Background(), TranslationDiscarded,
		KeyField.Field(string(field)),
		KeyToken.Field(int(token)),
	)
}
