package domain

import "time"

// VariantCode identifies one stylistic transformation in the catalog.
type VariantCode string

// String returns the string form of the code.
func (c VariantCode) String() string { return string(c) }

// Variant is one named stylistic transformation, e.g. bold or monospace.
type Variant struct {
	Code  VariantCode
	Label string
}

// GlyphMap maps source runes to their styled counterparts for one variant.
// Runes absent from the map pass through a transform unchanged.
type GlyphMap map[rune]rune

// Envelope is the message-embedded state pair: the untransformed text the
// user supplied at the start of the interaction chain, plus the currently
// displayed transform of it, if any.
//
// Original is written once when the chain starts and never overwritten;
// every later transform is re-derived from it.
type Envelope struct {
	Original    string
	Modified    string
	HasModified bool
}

// NewEnvelope starts an interaction chain from the given source text.
func NewEnvelope(original string) Envelope {
	return Envelope{Original: original}
}

// WithModified returns a copy of e carrying text as the modified line.
// The original text is preserved as-is.
func (e Envelope) WithModified(text string) Envelope {
	return Envelope{Original: e.Original, Modified: text, HasModified: true}
}

// DeliveryOutcome classifies the result of a relay post.
type DeliveryOutcome string

const (
	// DeliveryAccepted: the endpoint answered with a 2xx status.
	DeliveryAccepted DeliveryOutcome = "accepted"
	// DeliveryRejected: the endpoint answered with a 4xx status; the
	// payload will not be accepted on retry.
	DeliveryRejected DeliveryOutcome = "rejected"
	// DeliveryFailed: the endpoint answered with a 5xx status.
	DeliveryFailed DeliveryOutcome = "failed"
	// DeliveryUnreachable: the request never produced an HTTP response
	// (DNS, connect, timeout).
	DeliveryUnreachable DeliveryOutcome = "unreachable"
)

// Delivery reports one attempt to post text to the configured endpoint.
type Delivery struct {
	ID       string
	Outcome  DeliveryOutcome
	Status   int // HTTP status code; 0 when unreachable
	Duration time.Duration
}
