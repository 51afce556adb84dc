// Package apps launches applications by human-readable name and detects
// which known app currently holds window focus.
package apps
