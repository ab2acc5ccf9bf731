package bot

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylet/internal/envelope"
	"stylet/internal/telegram"
)

func pressUpdate(id int64, data, messageText string) telegram.Update {
	return telegram.Update{ID: id, CallbackQuery: &telegram.CallbackQuery{
		ID:      "cbq-1",
		Message: &telegram.Message{ID: 7, Chat: telegram.Chat{ID: 99}, Text: messageText},
		Data:    data,
	}}
}

func callbackData(kb *telegram.InlineKeyboardMarkup) []string {
	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			data = append(data, b.CallbackData)
		}
	}
	return data
}

func TestCallback_AppliesVariant(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), pressUpdate(1, "v:w", "Original: Hello World"))

	require.Len(t, chat.edited, 1)
	ed := chat.edited[0]
	assert.Equal(t, int64(99), ed.ChatID)
	assert.Equal(t, int64(7), ed.MessageID)
	assert.Equal(t, "Original: Hello World\nModified: "+monoHelloWorld, ed.Text)

	require.NotNil(t, ed.ReplyMarkup)
	assert.Equal(t, []string{"v:b", "v:i", "v:d", "v:o", "v:q"}, callbackData(ed.ReplyMarkup))

	require.Len(t, chat.answered, 1)
	assert.Equal(t, "cbq-1", chat.answered[0].CallbackQueryID)
	assert.Equal(t, "Monospace", chat.answered[0].Text)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.met.Transforms.WithLabelValues("w")))
}

func TestCallback_RederivesFromOriginal(t *testing.T) {
	// The modified line holds bold glyphs. Pressing Italic must restyle
	// the original, not the glyphs already on display.
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), pressUpdate(1, "v:i", "Original: Hi\nModified: "+boldHi))

	require.Len(t, chat.edited, 1)
	assert.Equal(t, "Original: Hi\nModified: "+italicHi, chat.edited[0].Text)
}

func TestCallback_NarrowsThenReoffers(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), pressUpdate(1, "v:b", "Original: Hi"))
	require.Len(t, chat.edited, 1)
	assert.Equal(t, "Original: Hi\nModified: "+boldHi, chat.edited[0].Text)
	assert.NotContains(t, callbackData(chat.edited[0].ReplyMarkup), "v:b")

	// Pressing a button on the edited message brings Bold back and
	// drops Italic instead.
	s.HandleUpdate(context.Background(), pressUpdate(2, "v:i", chat.edited[0].Text))
	require.Len(t, chat.edited, 2)
	assert.Equal(t, "Original: Hi\nModified: "+italicHi, chat.edited[1].Text)
	assert.Equal(t, []string{"v:w", "v:b", "v:d", "v:o", "v:q"}, callbackData(chat.edited[1].ReplyMarkup))
}

func TestCallback_RepeatedPressStillAnswered(t *testing.T) {
	// A second press of the same button re-derives identical text and the
	// API refuses the no-op edit.
	chat := &fakeChat{editErr: &telegram.APIError{
		Method:      "editMessageText",
		Code:        400,
		Description: "Bad Request: message is not modified",
	}}
	s := newTestService(t, chat, nil)

	err := s.handleCallback(context.Background(), telegram.CallbackQuery{
		ID:      "cbq-2",
		Message: &telegram.Message{ID: 7, Chat: telegram.Chat{ID: 99}, Text: "Original: Hi\nModified: " + monoHi},
		Data:    "v:w",
	})

	require.NoError(t, err)
	require.Len(t, chat.answered, 1)
	assert.Equal(t, "Monospace", chat.answered[0].Text)
}

func TestCallback_EditFailureStillAnError(t *testing.T) {
	chat := &fakeChat{editErr: &telegram.APIError{
		Method:      "editMessageText",
		Code:        400,
		Description: "Bad Request: message to edit not found",
	}}
	s := newTestService(t, chat, nil)

	err := s.handleCallback(context.Background(), telegram.CallbackQuery{
		ID:      "cbq-3",
		Message: &telegram.Message{ID: 7, Chat: telegram.Chat{ID: 99}, Text: "Original: Hi"},
		Data:    "v:w",
	})

	require.Error(t, err)
	assert.Empty(t, chat.answered)
}

func TestCallback_MalformedEnvelope(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	err := s.handleCallback(context.Background(), telegram.CallbackQuery{
		ID:      "cbq-9",
		Message: &telegram.Message{ID: 7, Chat: telegram.Chat{ID: 99}, Text: "no labels here"},
		Data:    "v:w",
	})

	require.ErrorIs(t, err, envelope.ErrMalformedEnvelope)
	assert.Empty(t, chat.edited)
	require.Len(t, chat.answered, 1)
	assert.Equal(t, "I lost the original text. Send it again with /style.", chat.answered[0].Text)
}

func TestCallback_Expired(t *testing.T) {
	tests := []struct {
		name string
		cb   telegram.CallbackQuery
	}{
		{"foreign data", telegram.CallbackQuery{
			ID:      "1",
			Message: &telegram.Message{Text: "Original: x"},
			Data:    "page:2",
		}},
		{"unknown variant", telegram.CallbackQuery{
			ID:      "2",
			Message: &telegram.Message{Text: "Original: x"},
			Data:    "v:zz",
		}},
		{"message gone", telegram.CallbackQuery{
			ID:   "3",
			Data: "v:w",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chat := &fakeChat{}
			s := newTestService(t, chat, nil)

			require.NoError(t, s.handleCallback(context.Background(), tc.cb))

			assert.Empty(t, chat.edited)
			require.Len(t, chat.answered, 1)
			assert.Equal(t, "That button has expired.", chat.answered[0].Text)
		})
	}
}
