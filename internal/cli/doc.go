// Package cli implements the bwmon command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to small run functions for the actual work:
//
//	bwmon              - Live TUI bandwidth dashboard (the root command)
//	bwmon --static     - Plain line-per-tick output for logs and pipes
//	bwmon --list       - List interfaces with their byte counters
//	bwmon init         - Create a config file interactively
//	bwmon version      - Print version information
//
// # Flag Handling
//
// All monitoring flags live on the root command. Settings are resolved in
// layers: built-in defaults, then the config file, then BWMON_*
// environment variables, then flags. A flag only overrides the config
// file when it was actually set on the command line.
package cli
