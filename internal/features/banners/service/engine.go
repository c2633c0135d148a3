package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"banner-studio/internal/core/logger"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/notification"
	"banner-studio/internal/features/banners/ports"
	"banner-studio/internal/features/banners/resource"
	"banner-studio/internal/features/banners/translation"

	"github.com/zoobzio/capitan"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of an Engine.
type Dependencies struct {
	Languages domain.Languages
	Contrast  ports.ContrastModel
	Pipeline  *translation.Pipeline
	Queue     *notification.Queue
	Catalog   *notification.Catalog
	Images    *resource.Manager
}

// Engine implements ports.BannerService. It owns the authoritative
// BannerConfig and runs the side effects of every accepted action.
type Engine struct {
	languages domain.Languages
	contrast  ports.ContrastModel
	pipeline  *translation.Pipeline
	queue     *notification.Queue
	catalog   *notification.Catalog
	images    *resource.Manager
	dismissal domain.DismissalController
	logger    *zap.Logger

	mu  sync.Mutex
	cfg domain.BannerConfig

	closeOnce sync.Once
}

// NewEngine creates an Engine showing the default banner in the native language.
func NewEngine(deps Dependencies) *Engine {
	e := &Engine{
		languages: deps.Languages,
		contrast:  deps.Contrast,
		pipeline:  deps.Pipeline,
		queue:     deps.Queue,
		catalog:   deps.Catalog,
		images:    deps.Images,
		logger:    logger.Component("engine"),
		cfg:       domain.DefaultBannerConfig(deps.Languages.Native),
	}

	e.pipeline.Request(translation.FieldTitle, e.cfg.Title, e.cfg.Language)
	e.pipeline.Request(translation.FieldBody, e.cfg.Body, e.cfg.Language)
	e.refreshContrast()

	return e
}

// Snapshot returns the current config with its derived display state.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	cfg := e.cfg
	e.mu.Unlock()

	snap := domain.Snapshot{
		Config: cfg,
		Display: domain.DisplayState{
			DisplayTitle:    e.pipeline.Text(translation.FieldTitle),
			DisplayBody:     e.pipeline.Text(translation.FieldBody),
			ContrastWarning: !e.contrast.IsReadable(cfg.TextColor, cfg.Background.Effective()),
		},
		Visibility: e.dismissal.State(),
	}
	if n, ok := e.queue.Current(); ok {
		snap.Notification = &n
	}
	return snap
}

// Options returns the fonts, color palettes and languages on offer.
func (e *Engine) Options() domain.Options {
	return domain.NewOptions(e.languages)
}

func (e *Engine) SetTitle(ctx context.Context, title string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		return domain.SetTitle{Text: title}, nil
	})
}

func (e *Engine) SetBody(ctx context.Context, body string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		return domain.SetBody{Text: body}, nil
	})
}

// SetLanguage accepts a configured language code or the "native"/"target" aliases.
func (e *Engine) SetLanguage(ctx context.Context, code string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		lang, err := e.languages.Parse(code)
		if err != nil {
			return nil, err
		}
		return domain.SetLanguage{Language: lang}, nil
	})
}

func (e *Engine) SetFont(ctx context.Context, font string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		f, err := domain.ParseFont(font)
		if err != nil {
			return nil, err
		}
		return domain.SetFont{Font: f}, nil
	})
}

func (e *Engine) SetTextColor(ctx context.Context, color string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		c, err := domain.ParseColor(color)
		if err != nil {
			return nil, err
		}
		return domain.SetTextColor{Color: c}, nil
	})
}

// SetBackgroundColor fails with domain.ErrImageBackgroundActive while an image is set.
func (e *Engine) SetBackgroundColor(ctx context.Context, color string) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		c, err := domain.ParseColor(color)
		if err != nil {
			return nil, err
		}
		return domain.SetBackgroundColor{Color: c}, nil
	})
}

func (e *Engine) SetOverlayOpacity(ctx context.Context, opacity float64) error {
	return e.mutate(ctx, func() (domain.Action, error) {
		return domain.SetOverlayOpacity{Opacity: opacity}, nil
	})
}

// SetBackgroundImage stores file and shows it as the background. A rejected
// file leaves the banner unchanged. If storage fails after the previous image
// was released, the banner falls back to its solid color.
func (e *Engine) SetBackgroundImage(ctx context.Context, file domain.UploadFile) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dismissal.Dismissed() {
		return nil
	}

	previous := e.cfg.Background.Image
	res, err := e.images.Upload(ctx, file)
	if err != nil {
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) && previous != nil {
			if _, live := e.images.Current(); !live {
				e.logger.Warn("Image storage failed after release, reverting to solid background", zap.Error(err))
				e.cfg.Background = e.cfg.Background.WithoutImage()
				e.emitReleased(ctx, previous.ID)
				e.refreshContrast()
			}
		}
		e.reject(ctx, domain.ActionSetBackgroundImage, err)
		return err
	}

	if previous != nil {
		e.emitReleased(ctx, previous.ID)
	}
	return e.commitLocked(ctx, domain.SetBackgroundImage{Image: res})
}

// RemoveBackgroundImage revokes the image and restores the retained solid color.
// If the stored bytes cannot be released the banner keeps its image.
func (e *Engine) RemoveBackgroundImage(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dismissal.Dismissed() {
		return nil
	}

	action := domain.RemoveBackgroundImage{}
	if _, err := domain.Apply(e.cfg, action); err != nil {
		e.reject(ctx, action.Kind(), err)
		return err
	}

	img := *e.cfg.Background.Image
	if err := e.images.Release(ctx, img); err != nil {
		err = fmt.Errorf("failed to remove background image: %w", err)
		e.logger.Warn("Failed to release background image", zap.String("id", img.ID), zap.Error(err))
		e.reject(ctx, action.Kind(), err)
		return err
	}
	e.emitReleased(ctx, img.ID)

	return e.commitLocked(ctx, action)
}

// ClearNotification hides the current confirmation before it expires.
func (e *Engine) ClearNotification() {
	e.queue.Clear()
}

// Dismiss hides the banner for good. Later calls and mutations are no-ops.
func (e *Engine) Dismiss(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := domain.Apply(e.cfg, domain.Dismiss{})
	if err != nil {
		return nil
	}
	if !e.dismissal.Dismiss() {
		return nil
	}

	e.cfg = next
	e.queue.Reset()
	e.releaseCurrentLocked(ctx)
	e.logger.Info("Banner dismissed")
	capitan.Emit(ctx, BannerDismissed)
	return nil
}

// OpenImage returns the bytes behind a live access URL.
func (e *Engine) OpenImage(ctx context.Context, id string) (*domain.Blob, error) {
	return e.images.Open(ctx, id)
}

// Settle blocks until every pending translation has been applied or discarded.
func (e *Engine) Settle() {
	e.pipeline.Wait()
}

// Close stops translation work and releases the live image. Safe to call more than once.
func (e *Engine) Close(ctx context.Context) error {
	e.closeOnce.Do(e.pipeline.Close)

	e.mu.Lock()
	defer e.mu.Unlock()

	if res, ok := e.images.Current(); ok {
		if err := e.images.Release(ctx, res); err != nil {
			return fmt.Errorf("failed to release image on close: %w", err)
		}
		e.emitReleased(ctx, res.ID)
	}
	return nil
}

// mutate builds an action and commits it unless the banner is dismissed.
func (e *Engine) mutate(ctx context.Context, build func() (domain.Action, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dismissal.Dismissed() {
		return nil
	}

	action, err := build()
	if err != nil {
		e.reject(ctx, "", err)
		return err
	}
	return e.commitLocked(ctx, action)
}

func (e *Engine) commitLocked(ctx context.Context, action domain.Action) error {
	kind := action.Kind()

	next, err := domain.Apply(e.cfg, action)
	if errors.Is(err, domain.ErrDismissed) {
		e.logger.Debug("Ignoring mutation on dismissed banner", zap.String("action", string(kind)))
		return nil
	}
	if err != nil {
		e.reject(ctx, kind, err)
		return err
	}

	e.cfg = next

	if kind.AffectsText() {
		if kind != domain.ActionSetBody {
			e.pipeline.Request(translation.FieldTitle, next.Title, next.Language)
		}
		if kind != domain.ActionSetTitle {
			e.pipeline.Request(translation.FieldBody, next.Body, next.Language)
		}
	}

	if id, ok := notification.ConfirmationFor(kind); ok {
		e.queue.Push(e.catalog.Message(id))
	}

	if kind.AffectsContrast() {
		e.refreshContrast()
	}

	e.logger.Debug("Mutation applied", zap.String("action", string(kind)))
	capitan.Emit(ctx, MutationApplied, KeyAction.Field(string(kind)))
	return nil
}

func (e *Engine) refreshContrast() {
	if e.contrast.IsReadable(e.cfg.TextColor, e.cfg.Background.Effective()) {
		e.queue.ResolveWarning()
		return
	}
	if e.queue.RaiseWarning(e.catalog.Message(notification.MsgLowContrastWarning)) {
		e.logger.Info("Low contrast detected",
			zap.Stringer("text_color", e.cfg.TextColor),
			zap.Stringer("background", e.cfg.Background.Effective()),
		)
	}
}

func (e *Engine) reject(ctx context.Context, kind domain.ActionKind, err error) {
	e.logger.Debug("Mutation rejected", zap.String("action", string(kind)), zap.Error(err))
	capitan.Emit(ctx, MutationRejected,
		KeyAction.Field(string(kind)),
		KeyError.Field(err.Error()),
	)
}

// releaseCurrentLocked drops the live image bytes. The config is left as is.
func (e *Engine) releaseCurrentLocked(ctx context.Context) {
	res, ok := e.images.Current()
	if !ok {
		return
	}
	if err := e.images.Release(ctx, res); err != nil {
		e.logger.Warn("Failed to release background image", zap.String("id", res.ID), zap.Error(err))
		return
	}
	e.emitReleased(ctx, res.ID)
}

func (e *Engine) emitReleased(ctx context.Context, id string) {
	capitan.Emit(ctx, ResourceReleased, KeyResourceID.Field(id))
}
