package bot

import (
	"context"

	"stylet/internal/telegram"
	"stylet/internal/transcode"
)

// handleInline answers an inline query with one ready-to-send article per
// variant. Picking a result sends the styled text directly, so no envelope
// or keyboard is attached.
func (s *Service) handleInline(ctx context.Context, q telegram.InlineQuery) error {
	text := normalize(q.Query)

	// The API wants a results array even when empty; nil marshals as null.
	results := make([]telegram.InlineQueryResultArticle, 0, len(s.cat.Variants()))
	if text != "" {
		for _, v := range s.cat.Variants() {
			styled := s.tr.Apply(text, v.Code)
			if transcode.UTF16Len(styled) > messageLimit {
				continue
			}
			results = append(results, telegram.InlineQueryResultArticle{
				Type:                "article",
				ID:                  v.Code.String(),
				Title:               v.Label,
				Description:         styled,
				InputMessageContent: telegram.InputTextMessageContent{MessageText: styled},
			})
		}
	}

	return s.chat.AnswerInlineQuery(ctx, telegram.AnswerInlineQueryRequest{
		InlineQueryID: q.ID,
		Results:       results,
	})
}
