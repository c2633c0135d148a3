package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banner-studio/internal/core/cache"
	"banner-studio/internal/core/config"
	"banner-studio/internal/core/httpclient"
	"banner-studio/internal/core/logger"
	"banner-studio/internal/core/proxy"
	"banner-studio/internal/core/server"
	"banner-studio/internal/features/banners/adapters"
	"banner-studio/internal/features/banners/contrast"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/handler"
	"banner-studio/internal/features/banners/notification"
	"banner-studio/internal/features/banners/ports"
	"banner-studio/internal/features/banners/resource"
	"banner-studio/internal/features/banners/service"
	"banner-studio/internal/features/banners/translation"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// @title Banner Studio API
// @version 1.0
// @description This API drives a customizable banner: text, language, font, colors, background image and dismissal.
// @contact.name API Support
// @contact.email support@bannerstudio.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	hookSignals(l)
	defer capitan.Shutdown()

	// Blob storage: Redis when configured, process memory otherwise.
	var blobs ports.BlobStore
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")
		blobs = adapters.NewRedisBlobStore(redisCache)
	} else {
		l.Info("REDIS_URL not set, keeping images in memory")
		blobs = adapters.NewMemoryBlobStore()
	}

	languages := domain.Languages{
		Native: domain.Language(cfg.Banner.NativeLanguage),
		Target: domain.Language(cfg.Banner.TargetLanguage),
	}

	// Translation provider: HTTP service when configured, placeholder transform otherwise.
	var provider ports.TranslationProvider
	if cfg.Translation.ProviderURL != "" {
		timeout := time.Duration(cfg.Translation.TimeoutSeconds) * time.Second
		client := httpclient.NewProxiedClient(timeout, proxy.Settings{
			Enabled:  cfg.Proxy.Enabled,
			Hostname: cfg.Proxy.Hostname,
			Port:     cfg.Proxy.Port,
			Username: cfg.Proxy.Username,
			Password: cfg.Proxy.Password,
		})
		provider = translation.NewHTTPProvider(cfg.Translation.ProviderURL, string(languages.Native), timeout,
			translation.WithHTTPClient(client),
		)
	} else {
		provider = translation.NewVowelProvider(string(languages.Native))
	}

	pipeline, err := translation.NewPipeline(provider, languages, cfg.Translation.Workers,
		translation.WithDiscardHook(service.EmitTranslationDiscarded),
	)
	if err != nil {
		l.Fatal("Failed to create translation pipeline", zap.Error(err))
	}

	validator, err := contrast.NewValidator(cfg.Banner.ContrastModel, cfg.Banner.ContrastThreshold)
	if err != nil {
		l.Fatal("Failed to create contrast validator", zap.Error(err))
	}
	l.Info("Contrast validator ready",
		zap.String("contrast_model", cfg.Banner.ContrastModel),
		zap.Float64("contrast_threshold", validator.Threshold()),
	)

	catalog, err := notification.NewCatalog(cfg.Banner.NotificationLocale)
	if err != nil {
		l.Fatal("Failed to load message catalog", zap.Error(err))
	}

	duration := time.Duration(cfg.Banner.NotificationDurationMS) * time.Millisecond
	images := resource.NewManager(blobs,
		resource.WithMaxBytes(cfg.Banner.UploadMaxBytes),
		resource.WithContentSniffing(cfg.Banner.UploadSniffContent),
		resource.WithURLPrefix(cfg.Banner.BlobURLPrefix),
	)
	if _, err := images.Sweep(context.Background()); err != nil {
		l.Warn("Failed to sweep orphaned images", zap.Error(err))
	}

	engine := service.NewEngine(service.Dependencies{
		Languages: languages,
		Contrast:  validator,
		Pipeline:  pipeline,
		Queue:     notification.NewQueue(clockz.RealClock, duration),
		Catalog:   catalog,
		Images:    images,
	})

	srv := server.New(cfg)
	handler.NewBannerHandler(engine).RegisterRoutes(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
	if err := engine.Close(ctx); err != nil {
		l.Error("Engine shutdown failed", zap.Error(err))
	}
	l.Info("Application stopped")
}

// hookSignals mirrors engine signals into the structured log.
func hookSignals(l *zap.Logger) {
	events := l.Named("events")

	capitan.Hook(service.MutationApplied, func(_ context.Context, e *capitan.Event) {
		action, _ := service.KeyAction.From(e)
		events.Info("Banner updated", zap.String("action", action))
	})

	capitan.Hook(service.MutationRejected, func(_ context.Context, e *capitan.Event) {
		action, _ := service.KeyAction.From(e)
		errMsg, _ := service.KeyError.From(e)
		events.Info("Banner update rejected", zap.String("action", action), zap.String("error", errMsg))
	})

	capitan.Hook(service.TranslationDiscarded, func(_ context.Context, e *capitan.Event) {
		field, _ := service.KeyField.From(e)
		token, _ := service.KeyToken.From(e)
		events.Debug("Stale translation discarded", zap.String("field", field), zap.Int("token", token))
	})

	capitan.Hook(service.ResourceReleased, func(_ context.Context, e *capitan.Event) {
		id, _ := service.KeyResourceID.From(e)
		events.Info("Background image released", zap.String("id", id))
	})

	capitan.Hook(service.BannerDismissed, func(_ context.Context, _ *capitan.Event) {
		events.Info("Banner dismissed")
	})
}
