package domain

import (
	"context"
	"io"
	"time"
)

// Runner executes adb commands against the configured device.
type Runner interface {
	// Output runs `adb [-s serial] <args...>` and returns stdout.
	Output(ctx context.Context, args ...string) (string, error)
	// Shell runs `adb shell <args...>`.
	Shell(ctx context.Context, args ...string) (string, error)
	// SuShell runs script under `adb shell su -c '<script>'`.
	SuShell(ctx context.Context, script string) (string, error)
	// RawOutput runs `adb exec-out <args...>` and returns stdout bytes
	// unmodified (screenshots are binary).
	RawOutput(ctx context.Context, args ...string) ([]byte, error)
}

// DeviceService probes device facts. Rooted, Resolution, TouchDevice and
// TouchRange are memoized for the life of the process.
type DeviceService interface {
	Devices(ctx context.Context) ([]Device, error)
	Rooted(ctx context.Context) (bool, error)
	Resolution(ctx context.Context) (Size, error)
	TouchDevice(ctx context.Context) (string, bool, error)
	TouchRange(ctx context.Context) (TouchRange, error)
}

// TapOptions tune a single tap.
type TapOptions struct {
	Method   TapMethod
	Humanize bool
	// Delay overrides the configured post-tap delay when non-negative.
	Delay time.Duration
}

// InputService injects gestures and key events.
type InputService interface {
	Tap(ctx context.Context, p Point, opts TapOptions) error
	DoubleTap(ctx context.Context, p Point) error
	LongPress(ctx context.Context, p Point, duration time.Duration) error
	// Swipe derives the duration from the distance when duration is zero.
	Swipe(ctx context.Context, from, to Point, duration time.Duration) error
	Key(ctx context.Context, code string) error
	Back(ctx context.Context) error
	Home(ctx context.Context) error
	Text(ctx context.Context, s string) error
}

// ScreenService manages screen power and lock state. Wake, Sleep and Unlock
// report whether they changed anything.
type ScreenService interface {
	On(ctx context.Context) (bool, error)
	Wake(ctx context.Context) (bool, error)
	Sleep(ctx context.Context) (bool, error)
	Unlock(ctx context.Context, horizontal bool) (bool, error)
	Screenshot(ctx context.Context, w io.Writer) error
}

// AppService resolves human-readable app names and launches apps.
type AppService interface {
	Launch(ctx context.Context, name string) error
	// Current returns the recognized app name holding window focus, or
	// "System Home" when none of the known packages matches.
	Current(ctx context.Context) (string, error)
	Known() []string
}
