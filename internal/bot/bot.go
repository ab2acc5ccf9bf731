package bot

import (
	"context"
	"log/slog"
	"strings"

	"stylet/internal/catalog"
	"stylet/internal/domain"
	"stylet/internal/metrics"
	"stylet/internal/telegram"
	"stylet/internal/transcode"
)

// messageLimit is the Bot API cap on message text, in UTF-16 code units.
const messageLimit = 4096

// ChatClient is the slice of the chat API the handlers depend on.
type ChatClient interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) (telegram.Message, error)
	EditMessageText(ctx context.Context, req telegram.EditMessageTextRequest) (telegram.Message, error)
	AnswerCallbackQuery(ctx context.Context, req telegram.AnswerCallbackQueryRequest) error
	AnswerInlineQuery(ctx context.Context, req telegram.AnswerInlineQueryRequest) error
}

var _ ChatClient = (*telegram.Client)(nil)

// Service routes updates to their handlers and owns the interaction flow:
// styling requests open an envelope, keyboard presses re-derive the
// modified line from the original embedded in the pressed message, and
// posts go out through the relay.
//
// The service keeps no per-chat state. Everything a later turn needs is
// embedded in the rendered message text, so handlers are safe to run
// concurrently.
type Service struct {
	chat  ChatClient
	cat   *catalog.Catalog
	tr    *transcode.Transcoder
	relay domain.RelayClient
	log   *slog.Logger
	met   *metrics.Metrics
}

// New constructs the bot service. relay may be nil when no endpoint is
// configured; /post then answers with a notice.
func New(chat ChatClient, cat *catalog.Catalog, tr *transcode.Transcoder, relay domain.RelayClient, log *slog.Logger, met *metrics.Metrics) *Service {
	return &Service{chat: chat, cat: cat, tr: tr, relay: relay, log: log, met: met}
}

// HandleUpdate routes one update. Errors are logged, never returned; a
// failed update must not stop the intake loop.
func (s *Service) HandleUpdate(ctx context.Context, up telegram.Update) {
	var (
		kind = "other"
		err  error
	)
	switch {
	case up.Message != nil && up.Message.Text != "":
		kind = "message"
		err = s.handleMessage(ctx, *up.Message)
	case up.CallbackQuery != nil:
		kind = "callback"
		err = s.handleCallback(ctx, *up.CallbackQuery)
	case up.InlineQuery != nil:
		kind = "inline"
		err = s.handleInline(ctx, *up.InlineQuery)
	}
	s.met.Updates.WithLabelValues(kind).Inc()
	if err != nil {
		s.log.Error("update failed", "kind", kind, "update_id", up.ID, "error", err)
	}
}

// notify sends a plain text reply into a chat.
func (s *Service) notify(ctx context.Context, chatID int64, text string) error {
	_, err := s.chat.SendMessage(ctx, telegram.SendMessageRequest{ChatID: chatID, Text: text})
	return err
}

// normalize collapses each run of line breaks into a single space and
// trims the ends; the envelope grammar is line-oriented and cannot carry
// them.
func normalize(text string) string {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	return strings.TrimSpace(strings.Join(lines, " "))
}
