package domain

import "fmt"

// Point is a screen coordinate in pixels. Both components are non-negative.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Validate rejects negative coordinates.
func (p Point) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("coordinates must be non-negative, got %s", p)
	}
	return nil
}

// Size is a screen resolution in pixels.
type Size struct {
	W int
	H int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// TouchRange holds the axis maxima reported by a touch input device
// (getevent -pl). Zero values are replaced by defaults at parse time.
type TouchRange struct {
	XMax          int
	YMax          int
	PressureMax   int
	TouchMajorMax int
}

// Device is one row of `adb devices -l`.
type Device struct {
	Serial      string
	State       string // "device", "offline", "unauthorized", ...
	Model       string
	TransportID string
}

// DeviceProbe is the result of probing a connected device.
type DeviceProbe struct {
	Device     Device
	Resolution Size
	Rooted     bool
}

// TapMethod selects how a tap is delivered to the device.
type TapMethod string

const (
	// TapAuto uses sendevent on rooted devices and falls back to a
	// humanized short swipe otherwise.
	TapAuto TapMethod = "auto"
	// TapSendevent forces the raw sendevent path (requires root).
	TapSendevent TapMethod = "sendevent"
	// TapSwipe forces the short-swipe fallback.
	TapSwipe TapMethod = "swipe"
	// TapInput forces a plain `input tap`.
	TapInput TapMethod = "input"
)

// ParseTapMethod validates a --method flag value.
func ParseTapMethod(s string) (TapMethod, error) {
	switch TapMethod(s) {
	case TapAuto, TapSendevent, TapSwipe, TapInput:
		return TapMethod(s), nil
	}
	return "", fmt.Errorf("unknown tap method %q (want auto, sendevent, swipe or input)", s)
}
