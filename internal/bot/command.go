package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stylet/internal/domain"
	"stylet/internal/envelope"
	"stylet/internal/telegram"
	"stylet/internal/transcode"
)

const helpText = `Send me text and I will restyle it with Unicode variants.

/style <text> - style text and pick variants from a keyboard
/post <text> - post text to the configured endpoint
/help - this message

You can also just send text, or mention me inline in any chat.`

// envelopeOverheadUnits is the rendered envelope's size around empty
// original and modified lines.
var envelopeOverheadUnits = transcode.UTF16Len(envelope.Render(domain.Envelope{HasModified: true}))

func (s *Service) handleMessage(ctx context.Context, msg telegram.Message) error {
	name, args := command(msg.Text)
	switch name {
	case "start", "help":
		return s.notify(ctx, msg.Chat.ID, helpText)
	case "style":
		return s.startStyling(ctx, msg.Chat.ID, args)
	case "post":
		return s.postText(ctx, msg.Chat.ID, args)
	case "":
		// Bare text is styled directly.
		return s.startStyling(ctx, msg.Chat.ID, args)
	default:
		// Stay quiet in group chats; the command was likely for
		// another bot.
		if msg.Chat.Type != "private" {
			return nil
		}
		return s.notify(ctx, msg.Chat.ID, "Unknown command. Try /help.")
	}
}

// startStyling opens a styling interaction: a fresh envelope carrying text
// and a keyboard offering the full catalog.
func (s *Service) startStyling(ctx context.Context, chatID int64, text string) error {
	text = normalize(text)
	if text == "" {
		return s.notify(ctx, chatID, "Usage: /style <text>")
	}
	if n := worstCaseUnits(text); n > messageLimit {
		return s.notify(ctx, chatID, fmt.Sprintf(
			"That text is too long to style: a styled message could take %d of the %d allowed units.", n, messageLimit))
	}
	_, err := s.chat.SendMessage(ctx, telegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        envelope.Render(domain.NewEnvelope(text)),
		ReplyMarkup: keyboard(envelope.Offered(s.cat.Variants(), "")),
	})
	return err
}

// postText forwards args to the relay endpoint and reports the outcome.
func (s *Service) postText(ctx context.Context, chatID int64, args string) error {
	if s.relay == nil {
		return s.notify(ctx, chatID, "Posting is not configured.")
	}
	args = strings.TrimSpace(args)
	if args == "" {
		return s.notify(ctx, chatID, "Usage: /post <text>")
	}

	d, err := s.relay.Post(ctx, args)
	s.met.RelayPosts.WithLabelValues(string(d.Outcome)).Inc()
	if err != nil {
		s.log.Warn("relay post failed",
			"id", d.ID, "outcome", d.Outcome, "status", d.Status, "error", err)
		switch d.Outcome {
		case domain.DeliveryRejected:
			return s.notify(ctx, chatID, fmt.Sprintf("The endpoint rejected the post (HTTP %d).", d.Status))
		case domain.DeliveryUnreachable:
			return s.notify(ctx, chatID, "The endpoint is unreachable.")
		default:
			return s.notify(ctx, chatID, fmt.Sprintf("The endpoint failed (HTTP %d).", d.Status))
		}
	}
	return s.notify(ctx, chatID, fmt.Sprintf("Posted in %s. id=%s", d.Duration.Round(time.Millisecond), d.ID))
}

// worstCaseUnits bounds the rendered envelope size for text: a styled
// modified line can take two code units per scalar value.
func worstCaseUnits(text string) int {
	return envelopeOverheadUnits + transcode.UTF16Len(text) + 2*transcode.ScalarCount(text)
}

// command splits "/name@bot args" into its lowercase name and the rest.
// Non-command text comes back whole with an empty name.
func command(text string) (name, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	rest := text[1:]
	if i := strings.IndexAny(rest, " \n"); i >= 0 {
		name, args = rest[:i], strings.TrimSpace(rest[i+1:])
	} else {
		name = rest
	}
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name), args
}
