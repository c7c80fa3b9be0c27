package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/assistant"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/config"
	"github.com/tayloree/voicecart/internal/logger"
	"github.com/tayloree/voicecart/internal/metrics"
	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/storage"
	"github.com/tayloree/voicecart/internal/suggest"
)

// app holds the collaborators one command invocation needs.
type app struct {
	cfg       config.Config
	log       *logger.Logger
	backend   storage.Backend
	store     *shopping.Store
	provider  catalog.Provider
	metrics   *metrics.Recorder
	assistant *assistant.Assistant
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, invalidArgsError(err.Error(), "Fix or remove the config file, or set VOICECART_CONFIG.")
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagStorage != "" {
		cfg.Storage = strings.ToLower(flagStorage)
	}
	if flagCatalogURL != "" {
		cfg.CatalogURL = flagCatalogURL
	}
	if flagLang != "" {
		cfg.Language = flagLang
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, invalidArgsError(err.Error(),
			"voicecart languages",
			"voicecart list --storage sqlite",
		)
	}
	return cfg, nil
}

func newApp(_ *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, invalidArgsError(fmt.Sprintf("invalid log level %q", cfg.LogLevel))
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, internalError("creating data dir", err)
	}
	backend, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return nil, internalError("opening storage", err)
	}
	snap, err := backend.Load()
	if err != nil {
		backend.Close()
		return nil, internalError("loading list", err)
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		backend: backend,
		metrics: metrics.New(false),
	}
	a.store = shopping.NewStore(
		shopping.WithSnapshot(snap),
		shopping.WithPersister(backend),
		shopping.WithSearchLimit(cfg.SearchHistoryLimit),
		shopping.WithLogger(log),
	)
	if cfg.CatalogURL != "" {
		a.provider = api.NewClient(cfg.CatalogURL)
	} else {
		a.provider = catalog.NewBuiltin(cfg.CatalogLatency)
	}
	a.assistant = assistant.New(a.store, a.provider,
		assistant.WithLogger(log),
		assistant.WithMetrics(a.metrics),
	)

	log.Debug("app ready",
		zap.String("storage", cfg.Storage),
		zap.String("data_dir", cfg.DataDir),
		zap.String("catalog", catalogLabel(cfg)),
		zap.Int("items", len(snap.Items)),
	)
	return a, nil
}

// suggestEngine seeds its random picks by calendar day so that a listing
// and a later --accept agree.
func (a *app) suggestEngine() *suggest.Engine {
	now := time.Now()
	seed := int64(now.Year()*1000 + now.YearDay())
	return suggest.NewEngine(a.provider,
		suggest.WithRand(rand.New(rand.NewSource(seed))),
		suggest.WithLimit(a.cfg.MaxSuggestions),
		suggest.WithLogger(a.log),
	)
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		a.log.Warn("closing storage", zap.Error(err))
	}
	a.log.Sync()
}

func catalogLabel(cfg config.Config) string {
	if cfg.CatalogURL != "" {
		return cfg.CatalogURL
	}
	return "built-in"
}
