package telegram

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// Client talks to the Bot API over HTTPS. Every method is one API call;
// the token is part of the request path and never logged.
type Client struct {
	Token string
	Base  string
	HTTP  *http.Client
}

// NewClient returns a client for token against the public Bot API. The
// HTTP timeout stays above the getUpdates long-poll window.
func NewClient(token string) *Client {
	return &Client{
		Token: token,
		Base:  DefaultBaseURL,
		HTTP:  &http.Client{Timeout: 65 * time.Second},
	}
}

// APIError is a Bot API call that reached Telegram and was answered with
// ok=false.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// IsNotModified reports whether err is the Bot API refusing an edit that
// leaves the message unchanged.
func IsNotModified(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Description, "message is not modified")
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

// GetMe fetches the bot account the token belongs to.
func (c *Client) GetMe(ctx context.Context) (User, error) {
	var u User
	err := c.call(ctx, "getMe", nil, &u)
	return u, err
}

// GetUpdates long-polls for updates after req.Offset.
func (c *Client) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var ups []Update
	err := c.call(ctx, "getUpdates", req, &ups)
	return ups, err
}

// SendMessage posts a new message and returns it as sent.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (Message, error) {
	var m Message
	err := c.call(ctx, "sendMessage", req, &m)
	return m, err
}

// EditMessageText rewrites the text and keyboard of a sent message.
func (c *Client) EditMessageText(ctx context.Context, req EditMessageTextRequest) (Message, error) {
	var m Message
	err := c.call(ctx, "editMessageText", req, &m)
	return m, err
}

// AnswerCallbackQuery acknowledges a pressed button.
func (c *Client) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	return c.call(ctx, "answerCallbackQuery", req, nil)
}

// AnswerInlineQuery sends the result list for an inline query.
func (c *Client) AnswerInlineQuery(ctx context.Context, req AnswerInlineQueryRequest) error {
	return c.call(ctx, "answerInlineQuery", req, nil)
}

// SetWebhook points Telegram at url for update delivery.
func (c *Client) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	return c.call(ctx, "setWebhook", req, nil)
}

// DeleteWebhook switches update delivery back to polling.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", struct{}{}, nil)
}

// call posts in as JSON to one API method and decodes the result envelope
// into out when out is non-nil.
func (c *Client) call(ctx context.Context, method string, in, out any) error {
	buf := new(bytes.Buffer)
	if in != nil {
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/bot"+c.Token+"/"+method, buf)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, stripURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, stripURL(err))
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !api.OK {
		return &APIError{Method: method, Code: api.ErrorCode, Description: api.Description}
	}
	if out != nil {
		if err := json.Unmarshal(api.Result, out); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}

// stripURL drops the *url.Error layer from transport errors, keeping only
// the cause. The request URL embeds the token and must not reach logs.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// TokenFingerprint returns a short hex digest of the bot token, safe to
// log in place of the secret itself.
func TokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:10])
}
