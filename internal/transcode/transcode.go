package transcode

import (
	"strings"

	"stylet/internal/catalog"
	"stylet/internal/domain"
)

// Transcoder applies catalog variants to text, one scalar value at a time.
type Transcoder struct {
	cat *catalog.Catalog
}

// New returns a Transcoder backed by cat.
func New(cat *catalog.Catalog) *Transcoder {
	return &Transcoder{cat: cat}
}

// Apply maps every rune of text through the variant's glyph map. Runes the
// map does not cover, and all of text when the variant is not registered,
// come back unchanged. The output carries the same number of scalar values
// as the input in the same order.
func (t *Transcoder) Apply(text string, code domain.VariantCode) string {
	m, ok := t.cat.Map(code)
	if !ok {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 4) // a styled letter is up to four bytes
	for _, r := range text {
		if styled, ok := m[r]; ok {
			b.WriteRune(styled)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
