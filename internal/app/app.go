package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"stylet/internal/bot"
	"stylet/internal/telegram"
)

// shutdownTimeout bounds how long outstanding requests may run after a
// stop signal.
const shutdownTimeout = 5 * time.Second

// Run builds the dependency graph and serves updates until a stop
// signal: webhook mode registers the webhook and runs the HTTP server,
// polling mode runs the long-poll loop next to a health/metrics server.
func Run(cfg *Config) error {
	w, err := NewWire(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	me, err := w.Chat.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("telegram handshake: %w", err)
	}
	w.Log.Info("bot identified",
		"username", me.Username,
		"token_fp", telegram.TokenFingerprint(cfg.Telegram.Token))

	if cfg.WebhookMode() {
		return runWebhook(ctx, cfg, w)
	}
	return runPolling(ctx, cfg, w)
}

func runWebhook(ctx context.Context, cfg *Config, w *Wire) error {
	hook := cfg.Telegram.Webhook
	if err := w.Chat.SetWebhook(ctx, telegram.SetWebhookRequest{
		URL:         strings.TrimRight(hook.PublicURL, "/") + hook.Path,
		SecretToken: hook.SecretToken,
	}); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	w.Log.Info("webhook registered", "path", hook.Path)

	srv := &http.Server{
		Addr:    cfg.Listen.Addr,
		Handler: bot.NewHandler(w.Bot, w.Metrics, hook.Path, hook.SecretToken, w.Log),
	}
	return serve(ctx, srv, w.Log)
}

func runPolling(ctx context.Context, cfg *Config, w *Wire) error {
	// A stale webhook registration blocks getUpdates.
	if err := w.Chat.DeleteWebhook(ctx); err != nil {
		w.Log.Warn("delete webhook failed", "error", err)
	}

	// pollCtx ties the poller to the server: a failed bind stops both.
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := bot.NewPoller(w.Chat, w.Bot, w.Log)
	pollerDone := make(chan struct{})
	go func() {
		poller.Run(pollCtx)
		close(pollerDone)
	}()

	srv := &http.Server{
		Addr:    cfg.Listen.Addr,
		Handler: bot.NewHandler(w.Bot, w.Metrics, "", "", w.Log),
	}
	err := serve(ctx, srv, w.Log)
	cancel()
	<-pollerDone
	return err
}

// serve runs srv until ctx ends, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return srv.Close()
	}
	return nil
}
