package screen

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"droidctl/internal/domain"
	"droidctl/internal/parse"
)

const (
	wakeSettle   = 500 * time.Millisecond
	sleepSettle  = 300 * time.Millisecond
	unlockSettle = 500 * time.Millisecond
	unlockSwipe  = 300 * time.Millisecond
)

// Service reads and changes screen state through a Runner.
type Service struct {
	runner domain.Runner
	device domain.DeviceService
	log    *zap.Logger
	sleep  func(time.Duration)
}

func New(runner domain.Runner, device domain.DeviceService, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{runner: runner, device: device, log: log, sleep: time.Sleep}
}

// On reports whether the screen is currently on.
func (s *Service) On(ctx context.Context) (bool, error) {
	out, err := s.runner.Shell(ctx, "dumpsys", "power")
	if err != nil {
		return false, err
	}
	return parse.ScreenOn(out), nil
}

// Wake turns the screen on. Returns false when it was already on.
func (s *Service) Wake(ctx context.Context) (bool, error) {
	on, err := s.On(ctx)
	if err != nil {
		return false, err
	}
	if on {
		return false, nil
	}
	if _, err := s.runner.Shell(ctx, "input", "keyevent", "KEYCODE_WAKEUP"); err != nil {
		return false, err
	}
	s.sleep(wakeSettle)
	s.log.Debug("screen woken")
	return true, nil
}

// Sleep turns the screen off. Returns false when it was already off.
func (s *Service) Sleep(ctx context.Context) (bool, error) {
	on, err := s.On(ctx)
	if err != nil {
		return false, err
	}
	if !on {
		return false, nil
	}
	if _, err := s.runner.Shell(ctx, "input", "keyevent", "KEYCODE_SLEEP"); err != nil {
		return false, err
	}
	s.sleep(sleepSettle)
	s.log.Debug("screen slept")
	return true, nil
}

// Unlock wakes the screen and, when a swipe lock screen is showing, swipes
// it away: bottom-center up by default, left to right when horizontal.
// Returns whether an unlock swipe was attempted. PIN, pattern and password
// locks are out of reach.
func (s *Service) Unlock(ctx context.Context, horizontal bool) (bool, error) {
	if _, err := s.Wake(ctx); err != nil {
		return false, err
	}
	s.sleep(sleepSettle)

	out, err := s.runner.Shell(ctx, "dumpsys", "window")
	if err != nil {
		return false, err
	}
	if !parse.Locked(out) {
		return false, nil
	}

	size, err := s.device.Resolution(ctx)
	if err != nil {
		return false, err
	}
	var from, to domain.Point
	if horizontal {
		from = domain.Point{X: size.W * 2 / 10, Y: size.H / 2}
		to = domain.Point{X: size.W * 8 / 10, Y: size.H / 2}
	} else {
		from = domain.Point{X: size.W / 2, Y: size.H * 85 / 100}
		to = domain.Point{X: size.W / 2, Y: size.H * 30 / 100}
	}
	_, err = s.runner.Shell(ctx, "input", "swipe",
		strconv.Itoa(from.X), strconv.Itoa(from.Y),
		strconv.Itoa(to.X), strconv.Itoa(to.Y),
		strconv.Itoa(int(unlockSwipe.Milliseconds())))
	if err != nil {
		return false, err
	}
	s.sleep(unlockSettle)
	s.log.Debug("unlock swipe performed", zap.Bool("horizontal", horizontal))
	return true, nil
}

// Screenshot streams a PNG capture of the screen into w.
func (s *Service) Screenshot(ctx context.Context, w io.Writer) error {
	data, err := s.runner.RawOutput(ctx, "screencap", "-p")
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("screencap produced no output")
	}
	_, err = w.Write(data)
	return err
}

var _ domain.ScreenService = (*Service)(nil)
