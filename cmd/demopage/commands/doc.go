// Package commands defines the demopage CLI.
//
// Commands
//
//   - tui     Interactive demo page (default)
//   - table   Print the user table, optionally filtered by --status
//   - script  Run an intent script and print the final state
//
// # Implementation
//
// The root command loads configuration (flags, DEMOPAGE_* environment,
// .demopage.yaml) and sets up tracing before any subcommand runs. Each
// subcommand builds its own engine and logger, because the TUI must keep
// log output off the terminal it draws on.
package commands
