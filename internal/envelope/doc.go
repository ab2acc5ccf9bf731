// Package envelope encodes interaction state inside the rendered message
// text itself, so a stateless request/response turn can pick up where the
// previous one left off.
//
// A rendered block carries at most two labelled lines:
//
//	Original: <text as the user first supplied it>
//	Modified: <the currently displayed transform>
//
// The Original line is written when the interaction starts and never
// changes afterwards; each variant selection reparses it and derives a
// fresh Modified line from it, never from the styled text. Parsing is
// anchored on the labels rather than line positions and skips any
// surrounding lines; a block without an Original line is malformed.
//
// Offered implements the narrowing rule for the selection keyboard: each
// turn offers the full catalog minus only the variant just applied.
package envelope
