package touch

import (
	"math/rand"
	"time"

	"droidctl/internal/domain"
)

// SwipeTapPlan is the non-root tap fallback: a very short `input swipe`
// with human-like endpoints and duration.
type SwipeTapPlan struct {
	From      domain.Point
	To        domain.Point
	Duration  time.Duration
	PreDelay  time.Duration
	PostDelay time.Duration
}

// Humanizer randomizes tap plans. The rand source is injected so plans are
// reproducible under test.
type Humanizer struct {
	rnd *rand.Rand
}

func NewHumanizer(rnd *rand.Rand) *Humanizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Humanizer{rnd: rnd}
}

// PlanTap builds a humanized sendevent tap at screen point p: ±3 px
// position jitter, pressure at 70-100% of the axis max, contact size at
// 30-60%, a 70% chance of a ±2 px micro-movement, and randomized pre/post
// delays.
func (h *Humanizer) PlanTap(p domain.Point, screen domain.Size, r domain.TouchRange) TapPlan {
	pos := Scale(domain.Point{
		X: p.X + h.between(-3, 3),
		Y: p.Y + h.between(-3, 3),
	}, screen, r)

	plan := TapPlan{
		Pos:        pos,
		Pressure:   h.between(r.PressureMax*7/10, r.PressureMax),
		TouchMajor: h.between(r.TouchMajorMax*3/10, r.TouchMajorMax*6/10),
		PreDelay:   h.durationBetween(50*time.Millisecond, 150*time.Millisecond),
		PostDelay:  h.durationBetween(30*time.Millisecond, 100*time.Millisecond),
	}
	if h.rnd.Float64() > 0.3 {
		micro := domain.Point{
			X: clamp(pos.X+h.between(-2, 2)*r.XMax/screen.W, 0, r.XMax),
			Y: clamp(pos.Y+h.between(-2, 2)*r.YMax/screen.H, 0, r.YMax),
		}
		plan.Micro = &micro
	}
	return plan
}

// PlanSwipeTap builds the `input swipe` fallback: jittered start, a ±2 px
// end point and an 80-180 ms duration.
func (h *Humanizer) PlanSwipeTap(p domain.Point) SwipeTapPlan {
	from := domain.Point{
		X: max(0, p.X+h.between(-3, 3)),
		Y: max(0, p.Y+h.between(-3, 3)),
	}
	return SwipeTapPlan{
		From:      from,
		To:        domain.Point{X: max(0, from.X+h.between(-2, 2)), Y: max(0, from.Y+h.between(-2, 2))},
		Duration:  h.durationBetween(80*time.Millisecond, 180*time.Millisecond),
		PreDelay:  h.durationBetween(50*time.Millisecond, 200*time.Millisecond),
		PostDelay: h.durationBetween(30*time.Millisecond, 100*time.Millisecond),
	}
}

// ExactTap builds a non-humanized plan: exact position, max pressure,
// contact size at half the axis max, no micro-movement, no random delays.
func ExactTap(p domain.Point, screen domain.Size, r domain.TouchRange) TapPlan {
	return TapPlan{
		Pos:        Scale(p, screen, r),
		Pressure:   r.PressureMax,
		TouchMajor: r.TouchMajorMax / 2,
	}
}

// ExactSwipeTap builds a non-humanized fallback plan with a fixed 100 ms
// duration and no movement.
func ExactSwipeTap(p domain.Point) SwipeTapPlan {
	return SwipeTapPlan{From: p, To: p, Duration: 100 * time.Millisecond}
}

// between returns a uniform int in [lo, hi].
func (h *Humanizer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + h.rnd.Intn(hi-lo+1)
}

func (h *Humanizer) durationBetween(lo, hi time.Duration) time.Duration {
	return lo + time.Duration(h.rnd.Int63n(int64(hi-lo+1)))
}
