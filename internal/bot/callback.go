package bot

import (
	"context"
	"strings"

	"stylet/internal/domain"
	"stylet/internal/envelope"
	"stylet/internal/telegram"
)

// callbackPrefix namespaces variant selections in callback data.
const callbackPrefix = "v:"

// handleCallback applies the chosen variant to the original embedded in
// the pressed message and narrows the keyboard to the remaining variants.
func (s *Service) handleCallback(ctx context.Context, cb telegram.CallbackQuery) error {
	code, isVariant := strings.CutPrefix(cb.Data, callbackPrefix)
	v, known := s.cat.Variant(domain.VariantCode(code))
	if !isVariant || !known || cb.Message == nil {
		return s.answer(ctx, cb.ID, "That button has expired.")
	}

	env, err := envelope.Parse(cb.Message.Text)
	if err != nil {
		// Never guess an original; a fabricated one would poison every
		// later transform. Ask the user to start over instead.
		if answerErr := s.answer(ctx, cb.ID, "I lost the original text. Send it again with /style."); answerErr != nil {
			return answerErr
		}
		return err
	}

	styled := s.tr.Apply(env.Original, v.Code)
	s.met.Transforms.WithLabelValues(v.Code.String()).Inc()

	if _, err := s.chat.EditMessageText(ctx, telegram.EditMessageTextRequest{
		ChatID:      cb.Message.Chat.ID,
		MessageID:   cb.Message.ID,
		Text:        envelope.Render(env.WithModified(styled)),
		ReplyMarkup: keyboard(envelope.Offered(s.cat.Variants(), v.Code)),
	}); err != nil {
		// A repeated press re-derives the same text and the API refuses
		// the no-op edit; the press still gets its ack.
		if !telegram.IsNotModified(err) {
			return err
		}
	}
	return s.answer(ctx, cb.ID, v.Label)
}

// answer closes the button's progress state with a short notice.
func (s *Service) answer(ctx context.Context, callbackID, text string) error {
	return s.chat.AnswerCallbackQuery(ctx, telegram.AnswerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
	})
}
