package translation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"banner-studio/internal/core/logger"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Field identifies an independently translated piece of text.
type Field string

const (
	FieldTitle Field = "title"
	FieldBody  Field = "body"
)

// DefaultWorkers is the worker pool size used when none is configured.
const DefaultWorkers = 8

// Pipeline translates display text asynchronously. Every request gets a
// monotonically increasing token per field and a result is only kept if its
// token is still the latest one for that field when it completes.
type Pipeline struct {
	provider  ports.TranslationProvider
	languages domain.Languages
	pool      *ants.Pool
	logger    *zap.Logger
	onDiscard func(field Field, token uint64)

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	latest map[Field]uint64
	texts  map[Field]string
	wg     sync.WaitGroup
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDiscardHook is called for every result dropped because a newer request superseded it.
func WithDiscardHook(fn func(field Field, token uint64)) Option {
	return func(p *Pipeline) {
		p.onDiscard = fn
	}
}

// NewPipeline creates a Pipeline backed by a non-blocking worker pool of the given size.
func NewPipeline(provider ports.TranslationProvider, languages domain.Languages, workers int, opts ...Option) (*Pipeline, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create translation pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pipeline{
		provider:  provider,
		languages: languages,
		pool:      pool,
		logger:    logger.Component("translation"),
		ctx:       ctx,
		cancel:    cancel,
		latest:    make(map[Field]uint64),
		texts:     make(map[Field]string),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Request supersedes any pending work for field and starts translating text
// into lang. Native-language requests resolve immediately.
func (p *Pipeline) Request(field Field, text string, lang domain.Language) uint64 {
	p.mu.Lock()
	p.latest[field]++
	token := p.latest[field]

	if p.languages.IsNative(lang) {
		p.texts[field] = text
		p.mu.Unlock()
		return token
	}

	p.wg.Add(1)
	p.mu.Unlock()

	task := func() {
		defer p.wg.Done()
		p.run(field, token, text, lang)
	}

	if err := p.pool.Submit(task); err != nil {
		if !errors.Is(err, ants.ErrPoolOverload) {
			p.logger.Warn("Translation pool rejected task", zap.Error(err))
		}
		go task()
	}

	return token
}

func (p *Pipeline) run(field Field, token uint64, text string, lang domain.Language) {
	translated, err := p.provider.Translate(p.ctx, text, string(lang))
	if err != nil {
		p.logger.Warn("Translation failed, showing original text",
			zap.String("field", string(field)),
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		translated = text
	}

	p.mu.Lock()
	if p.latest[field] != token {
		p.mu.Unlock()
		p.logger.Debug("Discarding stale translation",
			zap.String("field", string(field)),
			zap.Uint64("token", token),
		)
		if p.onDiscard != nil {
			p.onDiscard(field, token)
		}
		return
	}
	p.texts[field] = translated
	p.mu.Unlock()
}

// Text returns the current display text of field.
func (p *Pipeline) Text(field Field) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.texts[field]
}

func (p *Pipeline) latestToken(field Field) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest[field]
}

// Wait blocks until every in-flight translation has completed or been discarded.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Close cancels in-flight provider calls, waits for them and releases the pool.
func (p *Pipeline) Close() {
	p.cancel()
	p.wg.Wait()
	p.pool.Release()
}
