package catalog

import (
	"errors"
	"fmt"
	"strings"

	"stylet/internal/domain"
)

// Codes of the built-in variants.
const (
	Monospace    domain.VariantCode = "w"
	Bold         domain.VariantCode = "b"
	Italic       domain.VariantCode = "i"
	Doublestruck domain.VariantCode = "d"
	Circled      domain.VariantCode = "o"
	Squared      domain.VariantCode = "q"
)

var (
	ErrDuplicateCode  = errors.New("catalog: duplicate variant code")
	ErrDuplicateLabel = errors.New("catalog: duplicate variant label")
	ErrEmptyDef       = errors.New("catalog: variant needs a code and a label")
)

// Def declares the mapping rules for one variant. Upper, Lower and Digit
// are the targets of 'A', 'a' and '0'; each expands into a contiguous 26-
// or 10-rune run. A zero base leaves that class unmapped, so it passes
// through transforms verbatim. Overrides replace single entries after the
// runs, for slots Unicode keeps reserved inside a block.
type Def struct {
	Code      domain.VariantCode
	Label     string
	Upper     rune
	Lower     rune
	Digit     rune
	Overrides map[rune]rune
}

// Catalog is the immutable registry of supported variants. Build one with
// New or Default; lookups are safe for concurrent use.
type Catalog struct {
	variants []domain.Variant
	maps     map[domain.VariantCode]domain.GlyphMap
	byLabel  map[string]domain.VariantCode
}

// New builds a catalog from defs, preserving their order.
func New(defs ...Def) (*Catalog, error) {
	c := &Catalog{
		variants: make([]domain.Variant, 0, len(defs)),
		maps:     make(map[domain.VariantCode]domain.GlyphMap, len(defs)),
		byLabel:  make(map[string]domain.VariantCode, len(defs)),
	}
	for _, d := range defs {
		if d.Code == "" || d.Label == "" {
			return nil, ErrEmptyDef
		}
		if _, ok := c.maps[d.Code]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, d.Code)
		}
		key := strings.ToLower(d.Label)
		if _, ok := c.byLabel[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, d.Label)
		}
		c.variants = append(c.variants, domain.Variant{Code: d.Code, Label: d.Label})
		c.maps[d.Code] = buildMap(d)
		c.byLabel[key] = d.Code
	}
	return c, nil
}

// Default returns the catalog of the six built-in variants.
func Default() *Catalog {
	c, err := New(builtins...)
	if err != nil {
		panic(err) // builtins is static and well formed
	}
	return c
}

// Variants returns the ordered list of registered variants.
func (c *Catalog) Variants() []domain.Variant {
	out := make([]domain.Variant, len(c.variants))
	copy(out, c.variants)
	return out
}

// Variant returns the registered variant for code.
func (c *Catalog) Variant(code domain.VariantCode) (domain.Variant, bool) {
	for _, v := range c.variants {
		if v.Code == code {
			return v, true
		}
	}
	return domain.Variant{}, false
}

// Map returns the glyph map for code. A false ok means the code is not
// registered; callers treat that as "no transformation requested".
func (c *Catalog) Map(code domain.VariantCode) (domain.GlyphMap, bool) {
	m, ok := c.maps[code]
	return m, ok
}

// ByLabel resolves a human-readable label to its code, case-insensitively.
func (c *Catalog) ByLabel(label string) (domain.VariantCode, bool) {
	code, ok := c.byLabel[strings.ToLower(label)]
	return code, ok
}

// Has reports whether code is registered.
func (c *Catalog) Has(code domain.VariantCode) bool {
	_, ok := c.maps[code]
	return ok
}

func buildMap(d Def) domain.GlyphMap {
	m := make(domain.GlyphMap, 62)
	if d.Upper != 0 {
		for i := rune(0); i < 26; i++ {
			m['A'+i] = d.Upper + i
		}
	}
	if d.Lower != 0 {
		for i := rune(0); i < 26; i++ {
			m['a'+i] = d.Lower + i
		}
	}
	if d.Digit != 0 {
		for i := rune(0); i < 10; i++ {
			m['0'+i] = d.Digit + i
		}
	}
	for src, dst := range d.Overrides {
		m[src] = dst
	}
	return m
}

// builtins lists the six shipped variants. Base runes are the block
// positions of 'A', 'a' and '0' in the Mathematical Alphanumeric Symbols
// and enclosed-alphanumeric blocks; overrides cover code points that were
// assigned to Letterlike Symbols long before their block existed and stay
// reserved inside it.
var builtins = []Def{
	{
		Code:  Monospace,
		Label: "Monospace",
		Upper: 0x1D670, // MATHEMATICAL MONOSPACE CAPITAL A
		Lower: 0x1D68A, // MATHEMATICAL MONOSPACE SMALL A
		Digit: 0x1D7F6, // MATHEMATICAL MONOSPACE DIGIT ZERO
	},
	{
		Code:  Bold,
		Label: "Bold",
		Upper: 0x1D400, // MATHEMATICAL BOLD CAPITAL A
		Lower: 0x1D41A, // MATHEMATICAL BOLD SMALL A
		Digit: 0x1D7CE, // MATHEMATICAL BOLD DIGIT ZERO
	},
	{
		Code:  Italic,
		Label: "Italic",
		Upper: 0x1D434, // MATHEMATICAL ITALIC CAPITAL A
		Lower: 0x1D44E, // MATHEMATICAL ITALIC SMALL A
		// U+1D455 is reserved; the italic small h is U+210E PLANCK CONSTANT.
		Overrides: map[rune]rune{'h': 0x210E},
	},
	{
		Code:  Doublestruck,
		Label: "Doublestruck",
		Upper: 0x1D538, // MATHEMATICAL DOUBLE-STRUCK CAPITAL A
		Lower: 0x1D552, // MATHEMATICAL DOUBLE-STRUCK SMALL A
		Digit: 0x1D7D8, // MATHEMATICAL DOUBLE-STRUCK DIGIT ZERO
		// The number-set capitals live in Letterlike Symbols; their block
		// slots are reserved.
		Overrides: map[rune]rune{
			'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119,
			'Q': 0x211A, 'R': 0x211D, 'Z': 0x2124,
		},
	},
	{
		Code:  Circled,
		Label: "Circled",
		Upper: 0x24B6, // CIRCLED LATIN CAPITAL LETTER A
		Lower: 0x24D0, // CIRCLED LATIN SMALL LETTER A
		// CIRCLED DIGIT ZERO (U+24EA) is not contiguous with ONE..NINE
		// (U+2460..), so digits pass through.
	},
	{
		Code:  Squared,
		Label: "Squared",
		Upper: 0x1F130, // SQUARED LATIN CAPITAL LETTER A
		Lower: 0x1F130, // the block has no small letters; fold onto capitals
	},
}
