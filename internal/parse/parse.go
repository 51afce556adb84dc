package parse

import (
	"fmt"
	"strconv"
	"strings"

	"droidctl/internal/domain"
)

// Fallback resolution when `wm size` output is unusable.
var DefaultResolution = domain.Size{W: 1080, H: 2400}

// Touch axis defaults for devices that do not report a range.
var DefaultTouchRange = domain.TouchRange{
	XMax:          32767,
	YMax:          32767,
	PressureMax:   255,
	TouchMajorMax: 255,
}

// Devices parses `adb devices -l` output. The header line is skipped and
// model/transport_id fields are extracted when present.
func Devices(out string) []domain.Device {
	var devices []domain.Device
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || (i == 0 && strings.HasPrefix(line, "List of devices")) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		devices = append(devices, domain.Device{
			Serial:      fields[0],
			State:       fields[1],
			Model:       deviceField(line, "model"),
			TransportID: deviceField(line, "transport_id"),
		})
	}
	return devices
}

// deviceField extracts a key:value field from a `devices -l` line.
func deviceField(line, field string) string {
	pos := strings.Index(line, field+":")
	if pos == -1 {
		return ""
	}
	value := line[pos+len(field)+1:]
	if end := strings.IndexByte(value, ' '); end != -1 {
		value = value[:end]
	}
	return value
}

// ScreenSize parses `wm size` output, e.g. "Physical size: 1080x2400".
// An override line, when present, wins over the physical one.
func ScreenSize(out string) (domain.Size, error) {
	size := domain.Size{}
	found := false
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), "size") {
			continue
		}
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		ws, hs, ok := strings.Cut(strings.TrimSpace(value), "x")
		if !ok {
			continue
		}
		w, err1 := strconv.Atoi(strings.TrimSpace(ws))
		h, err2 := strconv.Atoi(strings.TrimSpace(hs))
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			continue
		}
		size = domain.Size{W: w, H: h}
		found = true
	}
	if !found {
		return domain.Size{}, fmt.Errorf("no size line in wm output")
	}
	return size, nil
}

// TouchDevice finds the touch input device path in `getevent -pl` output:
// the device whose capability block lists ABS_MT_POSITION_X.
func TouchDevice(out string) (string, bool) {
	current := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "add device") {
			_, path, ok := strings.Cut(line, ":")
			if ok {
				current = strings.TrimSpace(path)
			}
			continue
		}
		if strings.Contains(line, "ABS_MT_POSITION_X") && current != "" {
			return current, true
		}
	}
	return "", false
}

// TouchRange extracts the axis maxima for devicePath from `getevent -pl`
// output. Axes the device does not report keep their defaults.
func TouchRange(out, devicePath string) domain.TouchRange {
	r := DefaultTouchRange
	inTarget := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "add device") {
			if inTarget {
				break
			}
			inTarget = devicePath != "" && strings.Contains(line, devicePath)
			continue
		}
		if !inTarget {
			continue
		}
		switch {
		case strings.Contains(line, "ABS_MT_POSITION_X"):
			setMax(&r.XMax, line)
		case strings.Contains(line, "ABS_MT_POSITION_Y"):
			setMax(&r.YMax, line)
		case strings.Contains(line, "ABS_MT_PRESSURE"):
			setMax(&r.PressureMax, line)
		case strings.Contains(line, "ABS_MT_TOUCH_MAJOR"):
			setMax(&r.TouchMajorMax, line)
		}
	}
	return r
}

// setMax parses the "max N" part of a getevent capability line, e.g.
// "value 0, min 0, max 1079, fuzz 0, flat 0, resolution 0".
func setMax(dst *int, line string) {
	for _, part := range strings.Split(line, ",") {
		if !strings.Contains(part, "max") {
			continue
		}
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if v, err := strconv.Atoi(fields[len(fields)-1]); err == nil && v > 0 {
			*dst = v
		}
	}
}

// ScreenOn reports whether `dumpsys power` output says the screen is on.
func ScreenOn(out string) bool {
	return strings.Contains(out, "mWakefulness=Awake") ||
		strings.Contains(out, "Display Power: state=ON")
}

// Locked reports whether `dumpsys window` output says the lock screen is
// showing.
func Locked(out string) bool {
	return strings.Contains(out, "mDreamingLockscreen=true") ||
		strings.Contains(out, "isStatusBarKeyguard=true")
}

// FocusLines returns the window-focus lines from `dumpsys window` output.
func FocusLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "mCurrentFocus") || strings.Contains(line, "mFocusedApp") {
			lines = append(lines, line)
		}
	}
	return lines
}

// Rooted reports whether a `su -c id` run proves root: the command must
// have succeeded and its output must contain uid=0.
func Rooted(out string, err error) bool {
	return err == nil && strings.Contains(out, "uid=0")
}
