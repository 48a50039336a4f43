// Package monitor implements a real-time TUI dashboard for network
// interface throughput.
//
// The dashboard samples interface byte counters on a fixed interval,
// converts the deltas into download and upload rates, and plots the
// recent history as a scrolling line chart with running statistics.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (session, renderer, direction mode)
//   - Update: Processes messages (keystrokes, tick events, resizes)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Session  - Resolves one interface and owns the sampling pipeline
//	Sampler  - Converts raw counter readings into rates
//	History  - Ring buffer of recent samples feeding the charts
//	Stats    - Running peaks, averages and byte totals
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 1s)
//  2. Session.Tick reads counters and folds in one sample
//  3. View() re-renders the charts from the history window
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C, Esc - Quit
//	d / u / b      - Download only / upload only / both directions
//	r              - Switch chart renderer
//	s              - Toggle statistics summary
//	?              - Toggle help overlay
package monitor
