package app

import (
	"go.uber.org/zap"

	"droidctl/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings *config.Config // loaded config.yaml over defaults
	Serial   string         // device serial for adb -s; empty targets the default device
	Log      *zap.Logger    // optional; defaults to a nop logger
}
