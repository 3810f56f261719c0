package earshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/earshot/earshot/pkg/alerts"
	"github.com/earshot/earshot/pkg/classify"
	"github.com/earshot/earshot/pkg/logging"
	"github.com/earshot/earshot/pkg/metrics"
	"github.com/earshot/earshot/pkg/server"
	"github.com/earshot/earshot/pkg/sessions"
)

// App owns the registries and the HTTP server. Everything is built once
// here and passed by reference; no package holds mutable state of its own.
type App struct {
	cfg    Config
	server *server.Server
	logger *slog.Logger

	Alerts   *alerts.Registry
	Sessions *sessions.Registry

	async    *metrics.AsyncObserver
	artifact *os.File
}

func NewApp(cfg Config, providers *ProviderRegistry) (*App, error) {
	if providers == nil {
		providers = DefaultProviderRegistry()
	}

	recognizer, err := providers.BuildRecognizer(cfg.Recognizer.Provider, cfg.Recognizer.Settings)
	if err != nil {
		return nil, fmt.Errorf("build recognizer: %w", err)
	}
	notifier, err := providers.BuildNotifier(cfg.Notifier.Provider, cfg.Notifier.Settings)
	if err != nil {
		return nil, fmt.Errorf("build notifier: %w", err)
	}

	app := &App{
		cfg:    cfg,
		logger: logging.NewComponentLogger(slog.Default(), "app"),
	}

	var obs metrics.Observer = metrics.NoopObserver{}
	if dir := cfg.Observability.ArtifactsDir; dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create artifacts dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "metrics.jsonl"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open metrics artifact: %w", err)
		}
		app.artifact = f
		app.async = metrics.NewAsyncObserver(metrics.NewJSONLObserver(f), 256)
		obs = app.async
	}

	app.Alerts = alerts.NewRegistry(
		alerts.WithNotifier(notifier),
		alerts.WithObserver(obs),
	)
	app.Sessions = sessions.NewRegistry(recognizer, sessions.WithObserver(obs))

	app.server = server.New(cfg.Server, server.Deps{
		Alerts:          app.Alerts,
		Sessions:        app.Sessions,
		Classifier:      classify.New(),
		Recognizer:      recognizer,
		Languages:       cfg.ServerLanguages(),
		DefaultLanguage: cfg.Languages.Default,
		Observer:        obs,
	})

	app.logger.Info("app_configured",
		"recognizer", recognizer.Name(),
		"notifier", cfg.Notifier.Provider,
		"addr", cfg.Server.Addr)
	return app, nil
}

func (a *App) Start(ctx context.Context) error {
	return a.server.Start(ctx)
}

// Drain shuts the server down gracefully and flushes metric artifacts.
func (a *App) Drain() error {
	err := a.server.Stop()
	if a.async != nil {
		a.async.Close()
	}
	if a.artifact != nil {
		_ = a.artifact.Close()
	}
	return err
}
