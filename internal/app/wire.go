package app

import (
	"go.uber.org/zap"

	"droidctl/internal/adb"
	"droidctl/internal/config"
	appsvc "droidctl/internal/services/apps"
	devicesvc "droidctl/internal/services/device"
	inputsvc "droidctl/internal/services/input"
	screensvc "droidctl/internal/services/screen"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	runner := adb.New(settings.ADBPath, cfg.Serial, settings.Timing.CommandTimeout.Std(), log)
	device := devicesvc.New(runner, log)

	return &App{
		Runner: runner,
		Device: device,
		Input:  inputsvc.New(runner, device, settings.Timing, nil, log),
		Screen: screensvc.New(runner, device, log),
		Apps:   appsvc.New(runner, settings.Apps, settings.Timing.Launch.Std(), log),
	}
}
