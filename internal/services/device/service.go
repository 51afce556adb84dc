package device

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"droidctl/internal/domain"
	"droidctl/internal/parse"
)

// Service answers device questions through a Runner, memoizing the
// expensive probes.
type Service struct {
	runner domain.Runner
	log    *zap.Logger

	mu         sync.Mutex
	rooted     *bool
	resolution *domain.Size
	touchPath  *string // empty string means "no touch device"
	touchRange *domain.TouchRange
}

func New(runner domain.Runner, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{runner: runner, log: log}
}

// Devices lists connected devices. Never cached.
func (s *Service) Devices(ctx context.Context) ([]domain.Device, error) {
	out, err := s.runner.Output(ctx, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return parse.Devices(out), nil
}

// Rooted reports whether `su -c id` succeeds with uid 0.
func (s *Service) Rooted(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rooted != nil {
		return *s.rooted, nil
	}

	out, err := s.runner.SuShell(ctx, "id")
	rooted := parse.Rooted(out, err)
	s.log.Debug("root probe", zap.Bool("rooted", rooted))
	s.rooted = &rooted
	return rooted, nil
}

// Resolution returns the screen size from `wm size`, falling back to
// 1080x2400 when the output is unusable.
func (s *Service) Resolution(ctx context.Context) (domain.Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolution != nil {
		return *s.resolution, nil
	}

	out, err := s.runner.Shell(ctx, "wm", "size")
	if err != nil {
		return domain.Size{}, err
	}
	size, perr := parse.ScreenSize(out)
	if perr != nil {
		s.log.Debug("wm size unparseable, using fallback", zap.Error(perr))
		size = parse.DefaultResolution
	}
	s.resolution = &size
	return size, nil
}

// TouchDevice returns the /dev/input path of the touch screen, if any.
func (s *Service) TouchDevice(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchDeviceLocked(ctx)
}

func (s *Service) touchDeviceLocked(ctx context.Context) (string, bool, error) {
	if s.touchPath != nil {
		return *s.touchPath, *s.touchPath != "", nil
	}

	out, err := s.runner.Shell(ctx, "getevent", "-pl")
	if err != nil {
		return "", false, err
	}
	path, ok := parse.TouchDevice(out)
	if !ok {
		path = ""
	}
	s.log.Debug("touch device probe", zap.String("path", path))
	s.touchPath = &path
	return path, ok, nil
}

// TouchRange returns the touch device's axis maxima, with defaults when no
// touch device is present.
func (s *Service) TouchRange(ctx context.Context) (domain.TouchRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touchRange != nil {
		return *s.touchRange, nil
	}

	path, ok, err := s.touchDeviceLocked(ctx)
	if err != nil {
		return domain.TouchRange{}, err
	}
	r := parse.DefaultTouchRange
	if ok {
		out, err := s.runner.Shell(ctx, "getevent", "-pl")
		if err != nil {
			return domain.TouchRange{}, err
		}
		r = parse.TouchRange(out, path)
	}
	s.touchRange = &r
	return r, nil
}

var _ domain.DeviceService = (*Service)(nil)
