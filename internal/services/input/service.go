package input

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"droidctl/internal/config"
	"droidctl/internal/domain"
	"droidctl/internal/touch"
)

const defaultLongPress = 3 * time.Second

// Service delivers gestures through a Runner, consulting the device
// service for root status and touch geometry.
type Service struct {
	runner domain.Runner
	device domain.DeviceService
	hum    *touch.Humanizer
	timing config.Timing
	log    *zap.Logger
	sleep  func(time.Duration)
}

func New(runner domain.Runner, device domain.DeviceService, timing config.Timing, hum *touch.Humanizer, log *zap.Logger) *Service {
	if hum == nil {
		hum = touch.NewHumanizer(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		runner: runner,
		device: device,
		hum:    hum,
		timing: timing,
		log:    log,
		sleep:  time.Sleep,
	}
}

// Tap taps at p. In auto mode the sendevent path is used when the device
// is rooted and has a touch device; a failed sendevent falls back to a
// plain input tap.
func (s *Service) Tap(ctx context.Context, p domain.Point, opts domain.TapOptions) error {
	if err := p.Validate(); err != nil {
		return err
	}
	method := opts.Method
	if method == "" {
		method = domain.TapAuto
	}

	delay := s.timing.Tap.Std()
	if opts.Delay >= 0 {
		delay = opts.Delay
	}

	switch method {
	case domain.TapAuto:
		rooted, err := s.device.Rooted(ctx)
		if err != nil {
			return err
		}
		if rooted {
			err := s.sendeventTap(ctx, p, opts.Humanize)
			if err == nil {
				s.sleep(delay)
				return nil
			}
			s.log.Warn("sendevent tap failed, falling back to input tap", zap.Error(err))
		} else if err := s.swipeTap(ctx, p, opts.Humanize); err == nil {
			s.sleep(delay)
			return nil
		}
		if err := s.inputTap(ctx, p); err != nil {
			return err
		}
	case domain.TapSendevent:
		if err := s.sendeventTap(ctx, p, opts.Humanize); err != nil {
			return err
		}
	case domain.TapSwipe:
		if err := s.swipeTap(ctx, p, opts.Humanize); err != nil {
			return err
		}
	case domain.TapInput:
		if err := s.inputTap(ctx, p); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown tap method %q", method)
	}
	s.sleep(delay)
	return nil
}

// sendeventTap delivers a whole tap as one su shell script.
func (s *Service) sendeventTap(ctx context.Context, p domain.Point, humanize bool) error {
	path, ok, err := s.device.TouchDevice(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no touch input device found")
	}
	screen, err := s.device.Resolution(ctx)
	if err != nil {
		return err
	}
	r, err := s.device.TouchRange(ctx)
	if err != nil {
		return err
	}

	var plan touch.TapPlan
	if humanize {
		plan = s.hum.PlanTap(p, screen, r)
	} else {
		plan = touch.ExactTap(p, screen, r)
	}
	s.log.Debug("sendevent tap",
		zap.String("device", path),
		zap.Int("x", plan.Pos.X),
		zap.Int("y", plan.Pos.Y),
		zap.Int("pressure", plan.Pressure),
	)

	s.sleep(plan.PreDelay)
	if _, err := s.runner.SuShell(ctx, touch.Script(path, plan)); err != nil {
		return err
	}
	s.sleep(plan.PostDelay)
	return nil
}

// swipeTap fakes a tap with a very short input swipe.
func (s *Service) swipeTap(ctx context.Context, p domain.Point, humanize bool) error {
	var plan touch.SwipeTapPlan
	if humanize {
		plan = s.hum.PlanSwipeTap(p)
	} else {
		plan = touch.ExactSwipeTap(p)
	}

	s.sleep(plan.PreDelay)
	_, err := s.runner.Shell(ctx, "input", "swipe",
		itoa(plan.From.X), itoa(plan.From.Y),
		itoa(plan.To.X), itoa(plan.To.Y),
		itoa(int(plan.Duration.Milliseconds())))
	if err != nil {
		return err
	}
	s.sleep(plan.PostDelay)
	return nil
}

func (s *Service) inputTap(ctx context.Context, p domain.Point) error {
	_, err := s.runner.Shell(ctx, "input", "tap", itoa(p.X), itoa(p.Y))
	return err
}

// DoubleTap taps twice with the configured inter-tap interval.
func (s *Service) DoubleTap(ctx context.Context, p domain.Point) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.inputTap(ctx, p); err != nil {
		return err
	}
	s.sleep(s.timing.DoubleTapInterval.Std())
	if err := s.inputTap(ctx, p); err != nil {
		return err
	}
	s.sleep(s.timing.DoubleTap.Std())
	return nil
}

// LongPress holds p for duration (default 3s) using a zero-length swipe.
func (s *Service) LongPress(ctx context.Context, p domain.Point, duration time.Duration) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if duration <= 0 {
		duration = defaultLongPress
	}
	_, err := s.runner.Shell(ctx, "input", "swipe",
		itoa(p.X), itoa(p.Y), itoa(p.X), itoa(p.Y),
		itoa(int(duration.Milliseconds())))
	if err != nil {
		return err
	}
	s.sleep(s.timing.LongPress.Std())
	return nil
}

// Swipe drags from from to to. A zero duration is derived from the squared
// distance and clamped to 1-2 seconds.
func (s *Service) Swipe(ctx context.Context, from, to domain.Point, duration time.Duration) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if duration <= 0 {
		duration = swipeDuration(from, to)
	}
	_, err := s.runner.Shell(ctx, "input", "swipe",
		itoa(from.X), itoa(from.Y), itoa(to.X), itoa(to.Y),
		itoa(int(duration.Milliseconds())))
	if err != nil {
		return err
	}
	s.sleep(s.timing.Swipe.Std())
	return nil
}

// swipeDuration scales with squared distance, clamped to [1s, 2s].
func swipeDuration(from, to domain.Point) time.Duration {
	dx := from.X - to.X
	dy := from.Y - to.Y
	ms := (dx*dx + dy*dy) / 1000
	if ms < 1000 {
		ms = 1000
	}
	if ms > 2000 {
		ms = 2000
	}
	return time.Duration(ms) * time.Millisecond
}

// Key sends a keyevent by code or name (e.g. "4", "KEYCODE_HOME").
func (s *Service) Key(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("empty keycode")
	}
	_, err := s.runner.Shell(ctx, "input", "keyevent", code)
	return err
}

// Back presses the back button.
func (s *Service) Back(ctx context.Context) error {
	if err := s.Key(ctx, "4"); err != nil {
		return err
	}
	s.sleep(s.timing.Back.Std())
	return nil
}

// Home presses the home button.
func (s *Service) Home(ctx context.Context) error {
	if err := s.Key(ctx, "KEYCODE_HOME"); err != nil {
		return err
	}
	s.sleep(s.timing.Home.Std())
	return nil
}

// Text types s through `input text`, escaping spaces and shell
// metacharacters the way the input tool expects.
func (s *Service) Text(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("empty text")
	}
	_, err := s.runner.Shell(ctx, "input", "text", EscapeText(text))
	return err
}

// EscapeText encodes text for `input text`: spaces become %s and shell
// metacharacters get a backslash.
func EscapeText(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case ' ':
			b.WriteString("%s")
		case '\\', '"', '\'', '(', ')', '&', '<', '>', ';', '|', '$', '*', '~', '`':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func itoa(v int) string { return strconv.Itoa(v) }

var _ domain.InputService = (*Service)(nil)
