package bot

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stylet/internal/metrics"
	"stylet/internal/telegram"
)

// secretTokenHeader is echoed by Telegram on webhook deliveries when a
// secret token was set with the webhook.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// NewHandler builds the bot's HTTP surface: health, metrics and, when
// webhookPath is non-empty, the update endpoint. When secretToken is
// non-empty, deliveries without the matching header are refused.
func NewHandler(svc *Service, met *metrics.Metrics, webhookPath, secretToken string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Method(http.MethodGet, "/metrics", met.Handler())

	if webhookPath == "" {
		return r
	}

	r.Post(webhookPath, func(w http.ResponseWriter, req *http.Request) {
		if secretToken != "" {
			got := req.Header.Get(secretTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secretToken)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		var up telegram.Update
		if err := json.NewDecoder(req.Body).Decode(&up); err != nil {
			log.Warn("webhook decode failed", "error", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		svc.HandleUpdate(req.Context(), up)
		w.WriteHeader(http.StatusOK)
	})

	return r
}
