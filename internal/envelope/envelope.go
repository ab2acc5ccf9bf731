package envelope

import (
	"errors"
	"strings"

	"stylet/internal/domain"
)

const (
	originalLabel = "Original:"
	modifiedLabel = "Modified:"
)

// ErrMalformedEnvelope reports a block without an Original line. Callers
// must not substitute a default original; a fabricated one would corrupt
// every later re-derivation.
var ErrMalformedEnvelope = errors.New("envelope: no Original line")

// Render serialises e into its labelled block. Envelopes without a
// modified line render as the Original line alone.
func Render(e domain.Envelope) string {
	if !e.HasModified {
		return originalLabel + " " + e.Original
	}
	return originalLabel + " " + e.Original + "\n" + modifiedLabel + " " + e.Modified
}

// Parse extracts the envelope from a rendered block. Matching is anchored
// on the line labels, not on line positions: the first line starting with
// "Original:" carries the original text, the first starting with
// "Modified:" the modified text, and every other line is ignored.
func Parse(block string) (domain.Envelope, error) {
	var (
		e     domain.Envelope
		found bool
	)
	for _, line := range strings.Split(block, "\n") {
		switch {
		case !found && strings.HasPrefix(line, originalLabel):
			e.Original = trimLabel(line, originalLabel)
			found = true
		case !e.HasModified && strings.HasPrefix(line, modifiedLabel):
			e.Modified = trimLabel(line, modifiedLabel)
			e.HasModified = true
		}
	}
	if !found {
		return domain.Envelope{}, ErrMalformedEnvelope
	}
	return e, nil
}

// Offered returns all variants except the one just applied, in the order
// given. The set is recomputed from the full list every turn, so a variant
// dropped earlier becomes selectable again once a different one is chosen.
func Offered(all []domain.Variant, applied domain.VariantCode) []domain.Variant {
	out := make([]domain.Variant, 0, len(all))
	for _, v := range all {
		if v.Code != applied {
			out = append(out, v)
		}
	}
	return out
}

// trimLabel drops the label and the single space the renderer writes
// after it, when present.
func trimLabel(line, label string) string {
	return strings.TrimPrefix(line[len(label):], " ")
}
