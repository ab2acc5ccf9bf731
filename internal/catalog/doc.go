// Package catalog is the registry of text style variants and their
// character mappings.
//
// Each variant maps the ASCII letters, and for some variants the digits,
// onto styled Unicode counterparts: the Mathematical Alphanumeric Symbols
// block for monospace, bold, italic and doublestruck, the enclosed
// alphanumeric blocks for circled and squared. Within a variant each
// character class is a contiguous run, so a map is declared by its run
// bases plus a handful of overrides for historically reserved code points.
// Characters outside A-Z, a-z and 0-9 are never remapped by any variant.
//
// The catalog is immutable after construction. Lookups by unknown code or
// label report absence rather than failing; callers treat absence as "no
// transformation requested".
package catalog
