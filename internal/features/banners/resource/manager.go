package resource

import (
	"context"
	"fmt"
	"sync"

	"banner-studio/internal/core/logger"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// DefaultURLPrefix is prepended to blob ids when no prefix is configured.
const DefaultURLPrefix = "/banner/blobs/"

// Manager owns the single live background image. At most one access URL is
// live at a time: the previous image is released before a new one is stored.
type Manager struct {
	store     ports.BlobStore
	maxBytes  int64
	sniff     bool
	urlPrefix string
	clock     clockz.Clock
	logger    *zap.Logger
	onRelease func(domain.ImageResource)

	mu      sync.Mutex
	current *domain.ImageResource
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxBytes overrides the upload size limit.
func WithMaxBytes(n int64) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxBytes = n
		}
	}
}

// WithContentSniffing rejects uploads whose bytes do not match the declared mime type.
func WithContentSniffing(enabled bool) Option {
	return func(m *Manager) {
		m.sniff = enabled
	}
}

// WithURLPrefix sets the prefix used to build access URLs.
func WithURLPrefix(prefix string) Option {
	return func(m *Manager) {
		if prefix != "" {
			m.urlPrefix = prefix
		}
	}
}

// WithClock sets the clock used to stamp uploads.
func WithClock(clock clockz.Clock) Option {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithReleaseHook registers fn to run after a resource is released.
func WithReleaseHook(fn func(domain.ImageResource)) Option {
	return func(m *Manager) {
		m.onRelease = fn
	}
}

// NewManager creates a Manager backed by store.
func NewManager(store ports.BlobStore, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		maxBytes:  domain.MaxUploadBytes,
		urlPrefix: DefaultURLPrefix,
		clock:     clockz.RealClock,
		logger:    logger.Component("resource"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Validate runs the upload checks in order: declared mime type, content sniffing, size.
func (m *Manager) Validate(file domain.UploadFile) error {
	if err := domain.ValidateMimeType(file); err != nil {
		return err
	}

	if m.sniff && len(file.Bytes) > 0 {
		detected := mimetype.Detect(file.Bytes)
		if !detected.Is(file.MediaType()) {
			return &domain.ValidationError{
				Reason: domain.ErrInvalidMimeType,
				Detail: fmt.Sprintf("content is %s, declared %s", detected.String(), file.MediaType()),
			}
		}
	}

	return domain.ValidateSize(file, m.maxBytes)
}

// Upload validates file, releases the current image and stores the new one.
// A validation or release failure leaves the current image untouched. A storage
// failure after the release leaves no image live.
func (m *Manager) Upload(ctx context.Context, file domain.UploadFile) (domain.ImageResource, error) {
	if err := m.Validate(file); err != nil {
		return domain.ImageResource{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		if err := m.releaseLocked(ctx, *m.current); err != nil {
			return domain.ImageResource{}, err
		}
	}

	id := ulid.Make().String()
	res := domain.ImageResource{
		ID:         id,
		AccessURL:  m.urlPrefix + id,
		Name:       file.Name,
		MimeType:   file.MediaType(),
		SizeBytes:  file.Size(),
		UploadedAt: m.clock.Now().UTC(),
	}

	if err := m.store.Put(ctx, id, domain.Blob{MimeType: res.MimeType, Data: file.Bytes}); err != nil {
		return domain.ImageResource{}, fmt.Errorf("failed to store image: %w", err)
	}

	m.current = &res
	m.logger.Info("Background image stored",
		zap.String("id", id),
		zap.String("mime_type", res.MimeType),
		zap.Int64("size_bytes", res.SizeBytes),
	)
	return res, nil
}

// Release revokes the access URL of res. Releasing an unknown resource is a no-op.
func (m *Manager) Release(ctx context.Context, res domain.ImageResource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releaseLocked(ctx, res)
}

func (m *Manager) releaseLocked(ctx context.Context, res domain.ImageResource) error {
	if err := m.store.Delete(ctx, res.ID); err != nil {
		return fmt.Errorf("failed to release image %s: %w", res.ID, err)
	}

	if m.current != nil && m.current.ID == res.ID {
		m.current = nil
	}

	m.logger.Debug("Background image released", zap.String("id", res.ID))
	if m.onRelease != nil {
		m.onRelease(res)
	}
	return nil
}

// Sweep deletes every stored blob other than the live one and returns how many
// were removed. Blobs left behind by an earlier process are dropped this way.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids, err := m.store.IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stored images: %w", err)
	}

	removed := 0
	for _, id := range ids {
		if m.current != nil && m.current.ID == id {
			continue
		}
		if err := m.store.Delete(ctx, id); err != nil {
			return removed, fmt.Errorf("failed to sweep image %s: %w", id, err)
		}
		removed++
	}

	if removed > 0 {
		m.logger.Info("Swept orphaned images", zap.Int("count", removed))
	}
	return removed, nil
}

// Current returns the live image, if any.
func (m *Manager) Current() (domain.ImageResource, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.ImageResource{}, false
	}
	return *m.current, true
}

// Open returns the bytes behind a live access URL. Released ids are not found.
func (m *Manager) Open(ctx context.Context, id string) (*domain.Blob, error) {
	m.mu.Lock()
	live := m.current != nil && m.current.ID == id
	m.mu.Unlock()

	if !live {
		return nil, fmt.Errorf("%w: %s", ports.ErrBlobNotFound, id)
	}
	return m.store.Get(ctx, id)
}
