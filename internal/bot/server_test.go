package bot

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylet/internal/logging"
)

func newTestHandler(t *testing.T, chat ChatClient, secret string) (http.Handler, *Service) {
	t.Helper()
	s := newTestService(t, chat, nil)
	return NewHandler(s, s.met, "/hook", secret, logging.NewNop()), s
}

func TestHandler_Healthz(t *testing.T) {
	h, _ := newTestHandler(t, &fakeChat{}, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_WebhookDispatches(t *testing.T) {
	chat := &fakeChat{}
	h, _ := newTestHandler(t, chat, "hook-secret")

	body, err := json.Marshal(msgUpdate(5, "/help"))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
	req.Header.Set(secretTokenHeader, "hook-secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, chat.sent, 1)
	assert.Equal(t, helpText, chat.sent[0].Text)
}

func TestHandler_WebhookRejectsBadSecret(t *testing.T) {
	chat := &fakeChat{}
	h, _ := newTestHandler(t, chat, "hook-secret")

	for _, header := range []string{"wrong", ""} {
		req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{"update_id":1}`))
		if header != "" {
			req.Header.Set(secretTokenHeader, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "header %q", header)
	}
	assert.Empty(t, chat.sent)
}

func TestHandler_WebhookWithoutSecretConfigured(t *testing.T) {
	chat := &fakeChat{}
	h, _ := newTestHandler(t, chat, "")

	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{"update_id":1}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_WebhookBadJSON(t *testing.T) {
	h, _ := newTestHandler(t, &fakeChat{}, "")

	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_OpsOnly(t *testing.T) {
	// Polling mode serves health and metrics without an update endpoint.
	s := newTestService(t, &fakeChat{}, nil)
	h := NewHandler(s, s.met, "", "", logging.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{"update_id":1}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Metrics(t *testing.T) {
	h, _ := newTestHandler(t, &fakeChat{}, "")

	// Drive one update through so a counter series exists.
	req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(`{"update_id":1}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stylet_updates_total{kind="other"} 1`)
}
