package app

import "droidctl/internal/domain"

// App bundles the runner and services for the CLI.
type App struct {
	Runner domain.Runner
	Device domain.DeviceService
	Input  domain.InputService
	Screen domain.ScreenService
	Apps   domain.AppService
}
