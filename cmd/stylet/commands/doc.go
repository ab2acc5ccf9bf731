// Package commands defines the stylet CLI.
//
// Commands
//
//   - serve     Run the bot until interrupted
//   - apply     Restyle text with a variant and print it
//   - variants  List available variants with samples
//   - version   Print the build version
//
// # Implementation
//
// serve loads the YAML config, builds the dependency graph and drives
// update delivery in webhook or long-polling mode. apply and variants
// work offline on the built-in catalog and need no config.
package commands
