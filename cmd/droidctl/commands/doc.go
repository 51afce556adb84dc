// Package commands defines the droidctl CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - devices     List connected devices, optionally probing each one
//   - info        Show touch input diagnostics for the target device
//   - tap         Tap at coordinates (humanized by default)
//   - doubletap   Tap twice
//   - longpress   Press and hold
//   - swipe       Swipe between two points
//   - key         Send a raw keyevent; back and home are shortcuts
//   - text        Type a string
//   - screen      Wake, sleep or unlock the screen
//   - screenshot  Capture the screen as PNG
//   - app         Launch apps by name and query the focused app
//
// # Implementation
//
// The root command loads config.yaml, builds the zap logger and constructs
// the dependency graph (adb runner and services) before any subcommand
// runs, so handlers share one app context.
package commands
