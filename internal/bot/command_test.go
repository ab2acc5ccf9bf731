package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylet/internal/domain"
	"stylet/internal/telegram"
)

func fullKeyboard() [][]telegram.InlineKeyboardButton {
	return [][]telegram.InlineKeyboardButton{
		{
			{Text: "Monospace", CallbackData: "v:w"},
			{Text: "Bold", CallbackData: "v:b"},
			{Text: "Italic", CallbackData: "v:i"},
		},
		{
			{Text: "Doublestruck", CallbackData: "v:d"},
			{Text: "Circled", CallbackData: "v:o"},
			{Text: "Squared", CallbackData: "v:q"},
		},
	}
}

func TestStyleCommand_SendsEnvelopeWithKeyboard(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/style Hello World"))

	require.Len(t, chat.sent, 1)
	sent := chat.sent[0]
	assert.Equal(t, int64(99), sent.ChatID)
	assert.Equal(t, "Original: Hello World", sent.Text)
	require.NotNil(t, sent.ReplyMarkup)
	assert.Equal(t, fullKeyboard(), sent.ReplyMarkup.InlineKeyboard)
}

func TestBareText_StartsStyling(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "Hello World"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Original: Hello World", chat.sent[0].Text)
	require.NotNil(t, chat.sent[0].ReplyMarkup)
}

func TestStyleCommand_Usage(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/style"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Usage: /style <text>", chat.sent[0].Text)
	assert.Nil(t, chat.sent[0].ReplyMarkup)
}

func TestStyleCommand_StripsMentionSuffix(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/style@StyletBot hi"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Original: hi", chat.sent[0].Text)
}

func TestStyleCommand_TooLong(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/style "+strings.Repeat("a", 2100)))

	require.Len(t, chat.sent, 1)
	assert.Equal(t,
		"That text is too long to style: a styled message could take 6321 of the 4096 allowed units.",
		chat.sent[0].Text)
	assert.Nil(t, chat.sent[0].ReplyMarkup)
}

func TestHelpAndStart(t *testing.T) {
	for _, cmd := range []string{"/help", "/start"} {
		chat := &fakeChat{}
		s := newTestService(t, chat, nil)

		s.HandleUpdate(context.Background(), msgUpdate(1, cmd))

		require.Len(t, chat.sent, 1, "command %q", cmd)
		assert.Equal(t, helpText, chat.sent[0].Text)
	}
}

func TestUnknownCommand(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/frobnicate"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Unknown command. Try /help.", chat.sent[0].Text)
}

func TestUnknownCommand_SilentInGroups(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), telegram.Update{ID: 1, Message: &telegram.Message{
		ID:   1,
		Chat: telegram.Chat{ID: -100, Type: "supergroup"},
		Text: "/frobnicate",
	}})

	assert.Empty(t, chat.sent)
}

func TestPostCommand_Accepted(t *testing.T) {
	relay := &fakeRelay{d: domain.Delivery{
		ID:       "d-1",
		Outcome:  domain.DeliveryAccepted,
		Status:   202,
		Duration: 42 * time.Millisecond,
	}}
	chat := &fakeChat{}
	s := newTestService(t, chat, relay)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/post hello out there"))

	assert.Equal(t, []string{"hello out there"}, relay.texts)
	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Posted in 42ms. id=d-1", chat.sent[0].Text)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.met.RelayPosts.WithLabelValues("accepted")))
}

func TestPostCommand_Rejected(t *testing.T) {
	relay := &fakeRelay{
		d:   domain.Delivery{ID: "d-2", Outcome: domain.DeliveryRejected, Status: 422},
		err: errors.New("relay: endpoint rejected the payload"),
	}
	chat := &fakeChat{}
	s := newTestService(t, chat, relay)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/post nope"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "The endpoint rejected the post (HTTP 422).", chat.sent[0].Text)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.met.RelayPosts.WithLabelValues("rejected")))
}

func TestPostCommand_Unreachable(t *testing.T) {
	relay := &fakeRelay{
		d:   domain.Delivery{ID: "d-3", Outcome: domain.DeliveryUnreachable},
		err: errors.New("relay: endpoint unreachable"),
	}
	chat := &fakeChat{}
	s := newTestService(t, chat, relay)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/post hi"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "The endpoint is unreachable.", chat.sent[0].Text)
}

func TestPostCommand_NotConfigured(t *testing.T) {
	chat := &fakeChat{}
	s := newTestService(t, chat, nil)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/post hi"))

	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Posting is not configured.", chat.sent[0].Text)
}

func TestPostCommand_Usage(t *testing.T) {
	relay := &fakeRelay{}
	chat := &fakeChat{}
	s := newTestService(t, chat, relay)

	s.HandleUpdate(context.Background(), msgUpdate(1, "/post"))

	assert.Empty(t, relay.texts)
	require.Len(t, chat.sent, 1)
	assert.Equal(t, "Usage: /post <text>", chat.sent[0].Text)
}

func TestCommandParsing(t *testing.T) {
	tests := []struct {
		in   string
		name string
		args string
	}{
		{"/style hello", "style", "hello"},
		{"/style", "style", ""},
		{"/STYLE Foo", "style", "Foo"},
		{"/style@StyletBot hi", "style", "hi"},
		{"/post a b", "post", "a b"},
		{"/help\nextra", "help", "extra"},
		{"hello world", "", "hello world"},
		{"", "", ""},
	}
	for _, tc := range tests {
		name, args := command(tc.in)
		assert.Equal(t, tc.name, name, "command(%q) name", tc.in)
		assert.Equal(t, tc.args, args, "command(%q) args", tc.in)
	}
}

func TestWorstCaseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 21},
		{"Hello", 36},
		{"\U0001F642", 25},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, worstCaseUnits(tc.in), "worstCaseUnits(%q)", tc.in)
	}
}
