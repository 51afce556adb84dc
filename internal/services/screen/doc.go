// Package screen manages display power and lock state, and captures
// screenshots.
package screen
