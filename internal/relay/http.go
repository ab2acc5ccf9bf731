package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stylet/internal/domain"
)

var (
	ErrRejected    = errors.New("relay: endpoint rejected the payload")
	ErrFailed      = errors.New("relay: endpoint error")
	ErrUnreachable = errors.New("relay: endpoint unreachable")
)

// Payload is the JSON body posted to the endpoint.
type Payload struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// HTTP posts payloads to a fixed endpoint. When Secret is non-empty every
// request carries an X-Signature-256 header with the HMAC-SHA256 of the
// body.
type HTTP struct {
	Endpoint string
	Secret   string
	HTTP     *http.Client

	now   func() time.Time
	newID func() string
}

// NewHTTP returns a client posting to endpoint, signing with secret when
// it is non-empty.
func NewHTTP(endpoint, secret string) *HTTP {
	return &HTTP{
		Endpoint: endpoint,
		Secret:   secret,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

var _ domain.RelayClient = (*HTTP)(nil)

// Post delivers text to the endpoint. The returned Delivery always carries
// the payload id and an outcome; err is non-nil exactly when the outcome
// is not DeliveryAccepted.
func (c *HTTP) Post(ctx context.Context, text string) (domain.Delivery, error) {
	d := domain.Delivery{ID: c.newID()}

	body, err := json.Marshal(Payload{ID: d.ID, Text: text, SentAt: c.now().UTC()})
	if err != nil {
		d.Outcome = domain.DeliveryFailed
		return d, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		d.Outcome = domain.DeliveryFailed
		return d, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Secret != "" {
		req.Header.Set(SignatureHeader, SignaturePrefix+Sign(c.Secret, body))
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	d.Duration = time.Since(start)
	if err != nil {
		d.Outcome = domain.DeliveryUnreachable
		return d, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	d.Status = resp.StatusCode
	switch {
	case resp.StatusCode/100 == 2:
		d.Outcome = domain.DeliveryAccepted
		return d, nil
	case resp.StatusCode/100 == 4:
		d.Outcome = domain.DeliveryRejected
		return d, fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	default:
		d.Outcome = domain.DeliveryFailed
		return d, fmt.Errorf("%w: %s", ErrFailed, resp.Status)
	}
}
