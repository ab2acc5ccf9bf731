package bot

import (
	"context"
	"log/slog"
	"time"

	"stylet/internal/telegram"
)

// UpdateSource yields batches of updates. *telegram.Client satisfies it.
type UpdateSource interface {
	GetUpdates(ctx context.Context, req telegram.GetUpdatesRequest) ([]telegram.Update, error)
}

var _ UpdateSource = (*telegram.Client)(nil)

// Poller drives the bot from long-polled updates.
type Poller struct {
	src UpdateSource
	bot *Service
	log *slog.Logger

	timeout int
	backoff time.Duration
}

// NewPoller returns a poller with a 30 second long-poll window.
func NewPoller(src UpdateSource, bot *Service, log *slog.Logger) *Poller {
	return &Poller{
		src:     src,
		bot:     bot,
		log:     log,
		timeout: 30,
		backoff: 3 * time.Second,
	}
}

// Run polls until ctx is cancelled. Poll failures back off and retry;
// they never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("poller starting", "timeout_s", p.timeout)
	defer p.log.Info("poller stopped")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := p.src.GetUpdates(ctx, telegram.GetUpdatesRequest{
			Offset:         offset,
			Timeout:        p.timeout,
			AllowedUpdates: []string{"message", "callback_query", "inline_query"},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.log.Warn("poll failed", "error", err)
			select {
			case <-time.After(p.backoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, up := range updates {
			if up.ID >= offset {
				offset = up.ID + 1
			}
			p.bot.HandleUpdate(ctx, up)
		}
	}
}
