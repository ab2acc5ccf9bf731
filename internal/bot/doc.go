// Package bot is the chat-facing composition layer. It receives updates
// from Telegram, by webhook or long poll, and routes them: commands and
// bare text start a styling session, callback presses apply a variant and
// narrow the keyboard, and inline queries return ready-to-send previews.
//
// The bot keeps no session state of its own. The original text travels
// inside the rendered message, so any update can be handled on any
// instance, and a Service is safe for concurrent updates.
package bot
