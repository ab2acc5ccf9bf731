// Package telegram is a thin client for the slice of the Telegram Bot API
// this bot needs: fetching updates by long poll, webhook management, and
// sending, editing and answering messages, callbacks and inline queries.
//
// All requests are JSON over HTTPS against one method endpoint each. The
// Bot API wraps every reply in an ok/result envelope; calls answered with
// ok=false surface as *APIError carrying the method, code and description.
package telegram
