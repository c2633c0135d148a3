package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"banner-studio/internal/features/banners/adapters"
	"banner-studio/internal/features/banners/contrast"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/notification"
	"banner-studio/internal/features/banners/ports"
	"banner-studio/internal/features/banners/resource"
	"banner-studio/internal/features/banners/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type testEngine struct {
	*Engine
	clock *clockz.FakeClock
	store *adapters.MemoryBlobStore
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	languages := domain.DefaultLanguages()
	clock := clockz.NewFakeClock()
	store := adapters.NewMemoryBlobStore()

	pipeline, err := translation.NewPipeline(translation.NewVowelProvider(string(languages.Native)), languages, 4)
	require.NoError(t, err)

	catalog, err := notification.NewCatalog("en")
	require.NoError(t, err)

	e := NewEngine(Dependencies{
		Languages: languages,
		Contrast:  contrast.NewLegacyValidator(contrast.DefaultThreshold),
		Pipeline:  pipeline,
		Queue:     notification.NewQueue(clock, notification.DefaultDuration),
		Catalog:   catalog,
		Images:    resource.NewManager(store, resource.WithClock(clock)),
	})
	t.Cleanup(func() { _ = e.Close(context.Background()) })

	return &testEngine{Engine: e, clock: clock, store: store}
}

func vowels(s string) string {
	out, _ := translation.NewVowelProvider("en").Translate(context.Background(), s, "es")
	return out
}

func (e *testEngine) liveBlobs(t *testing.T) []string {
	t.Helper()
	ids, err := e.store.IDs(context.Background())
	require.NoError(t, err)
	return ids
}

func (e *testEngine) uploadPNG(t *testing.T) domain.ImageResource {
	t.Helper()
	require.NoError(t, e.SetBackgroundImage(context.Background(), domain.UploadFile{
		Name:     "bg.png",
		MimeType: domain.MimePNG,
		Bytes:    pngHeader,
	}))
	img := e.Snapshot().Config.Background.Image
	require.NotNil(t, img)
	return *img
}

func TestEngine_InitialSnapshot(t *testing.T) {
	e := newTestEngine(t)

	snap := e.Snapshot()
	assert.Equal(t, domain.DefaultBannerConfig("en"), snap.Config)
	assert.Equal(t, domain.DefaultTitle, snap.Display.DisplayTitle)
	assert.Equal(t, domain.DefaultBody, snap.Display.DisplayBody)
	assert.False(t, snap.Display.ContrastWarning)
	assert.Nil(t, snap.Notification)
	assert.Equal(t, domain.Visible, snap.Visibility)
}

func TestEngine_Options(t *testing.T) {
	e := newTestEngine(t)

	opts := e.Options()
	assert.Len(t, opts.Fonts, 5)
	assert.Len(t, opts.BackgroundPresets, 5)
	require.Len(t, opts.TextColorPresets, 5)
	assert.Equal(t, domain.ColorPreset{Name: "White", Color: domain.White}, opts.TextColorPresets[0])
	assert.Equal(t, []domain.Language{"en", "es"}, opts.Languages)
}

func TestEngine_SetTitleConfirms(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetTitle(ctx, "Hello"))

	snap := e.Snapshot()
	assert.Equal(t, "Hello", snap.Config.Title)
	assert.Equal(t, "Hello", snap.Display.DisplayTitle)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Title updated!", snap.Notification.Message)
	assert.Equal(t, domain.NotificationConfirmation, snap.Notification.Kind)

	e.clock.Advance(notification.DefaultDuration)
	assert.Nil(t, e.Snapshot().Notification)
}

func TestEngine_LanguageTranslatesBothFields(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetLanguage(ctx, "es"))
	e.Settle()

	snap := e.Snapshot()
	assert.Equal(t, domain.Language("es"), snap.Config.Language)
	assert.Equal(t, domain.DefaultTitle, snap.Config.Title)
	assert.Equal(t, vowels(domain.DefaultTitle), snap.Display.DisplayTitle)
	assert.Equal(t, vowels(domain.DefaultBody), snap.Display.DisplayBody)

	require.NoError(t, e.SetLanguage(ctx, "native"))
	snap = e.Snapshot()
	assert.Equal(t, domain.DefaultTitle, snap.Display.DisplayTitle)
	assert.Equal(t, domain.DefaultBody, snap.Display.DisplayBody)
}

func TestEngine_RapidLanguageAndTitleSequence(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetLanguage(ctx, "es"))
	require.NoError(t, e.SetTitle(ctx, "Hello"))
	require.NoError(t, e.SetLanguage(ctx, "en"))
	e.Settle()

	snap := e.Snapshot()
	assert.Equal(t, "Hello", snap.Display.DisplayTitle)
	assert.Equal(t, domain.DefaultBody, snap.Display.DisplayBody)
}

func TestEngine_InvalidInputs(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	before := e.Snapshot().Config

	assert.ErrorIs(t, e.SetLanguage(ctx, "fr"), domain.ErrUnsupportedLanguage)
	assert.ErrorIs(t, e.SetFont(ctx, "Comic Sans"), domain.ErrUnsupportedFont)
	assert.ErrorIs(t, e.SetTextColor(ctx, "red"), domain.ErrInvalidColor)
	assert.ErrorIs(t, e.SetBackgroundColor(ctx, "#12"), domain.ErrInvalidColor)
	assert.ErrorIs(t, e.RemoveBackgroundImage(ctx), domain.ErrNoBackgroundImage)

	snap := e.Snapshot()
	assert.Equal(t, before, snap.Config)
	assert.Nil(t, snap.Notification)
}

func TestEngine_FontAndOpacity(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetFont(ctx, "Courier New"))
	assert.Equal(t, domain.FontCourierNew, e.Snapshot().Config.Font)

	require.NoError(t, e.SetOverlayOpacity(ctx, 1.7))
	assert.Equal(t, 1.0, e.Snapshot().Config.OverlayOpacity)

	require.NoError(t, e.SetOverlayOpacity(ctx, math.NaN()))
	snap := e.Snapshot()
	assert.Equal(t, 0.0, snap.Config.OverlayOpacity)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Overlay opacity updated!", snap.Notification.Message)
}

func TestEngine_ContrastWarning(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundColor(ctx, "#1abc9c"))
	assert.False(t, e.Snapshot().Display.ContrastWarning)

	require.NoError(t, e.SetTextColor(ctx, "#1abc9c"))
	snap := e.Snapshot()
	assert.True(t, snap.Display.ContrastWarning)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, domain.NotificationWarning, snap.Notification.Kind)
	assert.Equal(t, "Warning: Text color has low contrast with background.", snap.Notification.Message)

	// The warning outlives the confirmation timer and survives Clear.
	e.clock.Advance(10 * time.Second)
	e.ClearNotification()
	require.NotNil(t, e.Snapshot().Notification)
	assert.Equal(t, domain.NotificationWarning, e.Snapshot().Notification.Kind)

	require.NoError(t, e.SetTextColor(ctx, "#ffffff"))
	snap = e.Snapshot()
	assert.False(t, snap.Display.ContrastWarning)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Text color updated!", snap.Notification.Message)
}

func TestEngine_ImageBackgroundCountsAsBlack(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundColor(ctx, "#ffffff"))
	require.NoError(t, e.SetTextColor(ctx, "#000000"))
	assert.False(t, e.Snapshot().Display.ContrastWarning)

	e.uploadPNG(t)
	assert.True(t, e.Snapshot().Display.ContrastWarning)

	require.NoError(t, e.RemoveBackgroundImage(ctx))
	snap := e.Snapshot()
	assert.False(t, snap.Display.ContrastWarning)
	assert.Equal(t, domain.SolidBackground(domain.White), snap.Config.Background)
}

func TestEngine_BackgroundImageLifecycle(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundColor(ctx, "#1abc9c"))
	first := e.uploadPNG(t)

	snap := e.Snapshot()
	assert.Equal(t, domain.BackgroundImage, snap.Config.Background.Kind)
	assert.Equal(t, "Background image updated!", snap.Notification.Message)

	blob, err := e.OpenImage(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, blob.Data)

	// A solid color cannot replace an image directly.
	assert.ErrorIs(t, e.SetBackgroundColor(ctx, "#8e44ad"), domain.ErrImageBackgroundActive)
	assert.Equal(t, first, *e.Snapshot().Config.Background.Image)

	second := e.uploadPNG(t)
	assert.NotEqual(t, first.AccessURL, second.AccessURL)
	assert.Equal(t, []string{second.ID}, e.liveBlobs(t))

	require.NoError(t, e.RemoveBackgroundImage(ctx))
	snap = e.Snapshot()
	assert.Equal(t, domain.SolidBackground(domain.MustParseColor("#1abc9c")), snap.Config.Background)
	assert.False(t, snap.Display.ContrastWarning)
	assert.Equal(t, "Background image removed!", snap.Notification.Message)
	assert.Empty(t, e.liveBlobs(t))
}

func TestEngine_RemovedImageRevealsUnreadableColor(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundColor(ctx, "#e74c3c"))
	assert.True(t, e.Snapshot().Display.ContrastWarning)

	// White text reads fine on the image.
	e.uploadPNG(t)
	assert.False(t, e.Snapshot().Display.ContrastWarning)

	require.NoError(t, e.RemoveBackgroundImage(ctx))
	snap := e.Snapshot()
	assert.Equal(t, domain.SolidBackground(domain.MustParseColor("#e74c3c")), snap.Config.Background)
	assert.True(t, snap.Display.ContrastWarning)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, domain.NotificationWarning, snap.Notification.Kind)

	require.NoError(t, e.SetTextColor(ctx, "#000000"))
	snap = e.Snapshot()
	assert.False(t, snap.Display.ContrastWarning)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Text color updated!", snap.Notification.Message)
}

func TestEngine_RejectedUploadKeepsState(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	before := e.Snapshot()

	err := e.SetBackgroundImage(ctx, domain.UploadFile{
		MimeType: domain.MimePNG,
		Bytes:    make([]byte, 6*1024*1024),
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	err = e.SetBackgroundImage(ctx, domain.UploadFile{MimeType: "image/gif", Bytes: []byte("GIF89a")})
	assert.ErrorIs(t, err, domain.ErrInvalidMimeType)

	// A declared size over the limit is rejected even when fewer bytes arrive.
	err = e.SetBackgroundImage(ctx, domain.UploadFile{
		MimeType:  domain.MimePNG,
		SizeBytes: 6 * 1024 * 1024,
		Bytes:     pngHeader,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	after := e.Snapshot()
	assert.Equal(t, before.Config, after.Config)
	assert.Nil(t, after.Notification)
	assert.Empty(t, e.liveBlobs(t))
}

type flakyStore struct {
	*adapters.MemoryBlobStore
	failPut    bool
	failDelete bool
}

func (s *flakyStore) Put(ctx context.Context, id string, blob domain.Blob) error {
	if s.failPut {
		return errors.New("storage unavailable")
	}
	return s.MemoryBlobStore.Put(ctx, id, blob)
}

func (s *flakyStore) Delete(ctx context.Context, id string) error {
	if s.failDelete {
		return errors.New("storage unavailable")
	}
	return s.MemoryBlobStore.Delete(ctx, id)
}

func newFlakyEngine(t *testing.T) (*Engine, *flakyStore) {
	t.Helper()

	languages := domain.DefaultLanguages()
	store := &flakyStore{MemoryBlobStore: adapters.NewMemoryBlobStore()}

	pipeline, err := translation.NewPipeline(translation.NewVowelProvider("en"), languages, 1)
	require.NoError(t, err)
	catalog, err := notification.NewCatalog("en")
	require.NoError(t, err)

	e := NewEngine(Dependencies{
		Languages: languages,
		Contrast:  contrast.NewLegacyValidator(contrast.DefaultThreshold),
		Pipeline:  pipeline,
		Queue:     notification.NewQueue(clockz.NewFakeClock(), 0),
		Catalog:   catalog,
		Images:    resource.NewManager(store),
	})
	t.Cleanup(func() {
		store.failDelete = false
		_ = e.Close(context.Background())
	})

	return e, store
}

func TestEngine_StorageFailureRevertsToSolid(t *testing.T) {
	e, store := newFlakyEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundImage(ctx, domain.UploadFile{MimeType: domain.MimePNG, Bytes: pngHeader}))

	store.failPut = true
	err := e.SetBackgroundImage(ctx, domain.UploadFile{MimeType: domain.MimePNG, Bytes: pngHeader})
	require.Error(t, err)

	snap := e.Snapshot()
	assert.Equal(t, domain.SolidBackground(domain.DefaultBackgroundColor), snap.Config.Background)
	ids, err := store.IDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestEngine_FailedReleaseKeepsImage(t *testing.T) {
	e, store := newFlakyEngine(t)
	ctx := context.Background()

	require.NoError(t, e.SetBackgroundImage(ctx, domain.UploadFile{MimeType: domain.MimePNG, Bytes: pngHeader}))
	img := e.Snapshot().Config.Background.Image
	require.NotNil(t, img)
	e.ClearNotification()

	store.failDelete = true
	err := e.RemoveBackgroundImage(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove background image")

	snap := e.Snapshot()
	require.NotNil(t, snap.Config.Background.Image)
	assert.Equal(t, *img, *snap.Config.Background.Image)
	assert.Nil(t, snap.Notification)

	blob, err := e.OpenImage(ctx, img.ID)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, blob.Data)

	// Once storage recovers the removal goes through.
	store.failDelete = false
	require.NoError(t, e.RemoveBackgroundImage(ctx))
	snap = e.Snapshot()
	assert.Equal(t, domain.BackgroundSolid, snap.Config.Background.Kind)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Background image removed!", snap.Notification.Message)
}

func TestEngine_RemoveWithoutImage(t *testing.T) {
	e := newTestEngine(t)

	err := e.RemoveBackgroundImage(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoBackgroundImage)
	assert.Nil(t, e.Snapshot().Notification)
}

func TestEngine_Dismiss(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	img := e.uploadPNG(t)
	require.NoError(t, e.SetTextColor(ctx, "#2c3e50"))
	require.NotNil(t, e.Snapshot().Notification)

	require.NoError(t, e.Dismiss(ctx))
	snap := e.Snapshot()
	assert.Equal(t, domain.Dismissed, snap.Visibility)
	assert.True(t, snap.Config.Dismissed)
	assert.Nil(t, snap.Notification)

	// The image bytes go with the banner.
	assert.Empty(t, e.liveBlobs(t))
	_, err := e.OpenImage(ctx, img.ID)
	assert.ErrorIs(t, err, ports.ErrBlobNotFound)

	// Second dismissal and later mutations are silent no-ops.
	require.NoError(t, e.Dismiss(ctx))
	require.NoError(t, e.SetTitle(ctx, "Ignored"))
	require.NoError(t, e.SetLanguage(ctx, "fr"))
	require.NoError(t, e.SetBackgroundImage(ctx, domain.UploadFile{MimeType: domain.MimePNG, Bytes: pngHeader}))

	after := e.Snapshot()
	assert.Equal(t, snap.Config, after.Config)
	assert.Nil(t, after.Notification)
	assert.Empty(t, e.liveBlobs(t))
}

func TestEngine_CloseReleasesImage(t *testing.T) {
	e := newTestEngine(t)
	e.uploadPNG(t)
	require.Len(t, e.liveBlobs(t), 1)

	require.NoError(t, e.Close(context.Background()))
	assert.Empty(t, e.liveBlobs(t))
}
