// Package transcode applies catalog variants to text.
//
// A transform walks the input by Unicode scalar value, replacing each
// mapped rune with its styled counterpart and passing everything else
// through untouched. It never normalises, folds case or reflows
// whitespace, and it is pure: equal inputs give equal outputs. The output
// of one variant is not valid input for another, so chained styling must
// always restart from the plain original text.
//
// The UTF-16 helpers make surrogate-pair encoding of the styled alphabets
// an explicit step for transports that count code units rather than
// scalar values.
package transcode
