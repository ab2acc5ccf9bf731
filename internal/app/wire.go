package app

import (
	"io"
	"log/slog"

	"stylet/internal/bot"
	"stylet/internal/catalog"
	"stylet/internal/domain"
	"stylet/internal/logging"
	"stylet/internal/metrics"
	"stylet/internal/relay"
	"stylet/internal/telegram"
	"stylet/internal/transcode"
)

// Wire bundles the constructed services and clients.
type Wire struct {
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Chat    *telegram.Client
	Catalog *catalog.Catalog
	Bot     *bot.Service

	logCloser io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	var (
		log    *slog.Logger
		closer io.Closer
	)
	if cfg.Log.File != "" {
		log, closer, err = logging.NewWithFile(level, cfg.Log.File)
		if err != nil {
			return nil, err
		}
	} else {
		log = logging.New(level)
	}

	met := metrics.New()

	chat := telegram.NewClient(cfg.Telegram.Token)
	if cfg.Telegram.BaseURL != "" {
		chat.Base = cfg.Telegram.BaseURL
	}

	var rc domain.RelayClient
	if cfg.Relay.Endpoint != "" {
		rc = relay.NewHTTP(cfg.Relay.Endpoint, cfg.Relay.Secret)
	}

	cat := catalog.Default()
	svc := bot.New(chat, cat, transcode.New(cat), rc, log, met)

	return &Wire{
		Log:       log,
		Metrics:   met,
		Chat:      chat,
		Catalog:   cat,
		Bot:       svc,
		logCloser: closer,
	}, nil
}

// Close releases resources held by the graph, the log file included.
func (w *Wire) Close() error {
	if w.logCloser != nil {
		return w.logCloser.Close()
	}
	return nil
}
