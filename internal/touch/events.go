package touch

import (
	"fmt"
	"strings"
	"time"

	"droidctl/internal/domain"
)

// Linux input event codes, as consumed by sendevent.
const (
	evSyn = 0
	evKey = 1
	evAbs = 3

	synReport = 0
	btnTouch  = 330

	absMTTouchMajor = 48
	absMTPositionX  = 53
	absMTPositionY  = 54
	absMTTrackingID = 57
	absMTPressure   = 58
)

// TapPlan is a fully resolved tap: coordinates already in the touch
// device's axis space, plus pressure, contact size and timing.
type TapPlan struct {
	Pos        domain.Point
	Micro      *domain.Point // optional micro-movement before lift
	Pressure   int
	TouchMajor int
	PreDelay   time.Duration
	PostDelay  time.Duration
}

// Scale maps a screen coordinate into the touch device's axis space,
// clamped to [0, max] on both axes.
func Scale(p domain.Point, screen domain.Size, r domain.TouchRange) domain.Point {
	return domain.Point{
		X: clamp(p.X*r.XMax/screen.W, 0, r.XMax),
		Y: clamp(p.Y*r.YMax/screen.H, 0, r.YMax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Script renders plan as a single shell script of sendevent commands,
// joined with && so one adb invocation delivers the whole gesture.
func Script(devicePath string, plan TapPlan) string {
	ev := func(typ, code, value int) string {
		return fmt.Sprintf("sendevent %s %d %d %d", devicePath, typ, code, value)
	}
	events := []string{
		ev(evAbs, absMTTrackingID, 0),
		ev(evAbs, absMTPositionX, plan.Pos.X),
		ev(evAbs, absMTPositionY, plan.Pos.Y),
		ev(evAbs, absMTTouchMajor, plan.TouchMajor),
		ev(evAbs, absMTPressure, plan.Pressure),
		ev(evKey, btnTouch, 1),
		ev(evSyn, synReport, 0),
	}
	if plan.Micro != nil {
		events = append(events,
			ev(evAbs, absMTPositionX, plan.Micro.X),
			ev(evAbs, absMTPositionY, plan.Micro.Y),
			ev(evSyn, synReport, 0),
		)
	}
	events = append(events,
		ev(evAbs, absMTTrackingID, -1),
		ev(evKey, btnTouch, 0),
		ev(evSyn, synReport, 0),
	)
	return strings.Join(events, " && ")
}
