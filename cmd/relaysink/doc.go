// Package main runs the development sink for stylet's /post command. It
// accepts signed payloads and prints them to stdout.
//
// HTTP API
//
//	POST /posts
//	    Accept a payload {id, text, sent_at}. When started with -secret,
//	    the X-Signature-256 header must carry a valid HMAC of the raw
//	    body. Replies 202 Accepted.
//
// Behaviour
//
//   - Payloads are printed and never stored.
//   - Non-2xx statuses carry a short error message.
//   - The default listen address is :9444.
//
// The sink is intended for local development: point relay.endpoint at it
// to see what the bot would post without standing up a real consumer.
package main
