// Package app wires application dependencies and runs the bot.
//
// It builds the logger, metrics, Telegram client, catalog and relay
// client from Config, exposing them via the Wire struct, and drives
// update delivery in webhook or long-polling mode until a stop signal.
package app
