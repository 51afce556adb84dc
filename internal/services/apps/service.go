package apps

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"droidctl/internal/domain"
	"droidctl/internal/parse"
)

// HomeName is reported by Current when no known package has focus.
const HomeName = "System Home"

// Service maps app names to package ids and drives app launching.
type Service struct {
	runner      domain.Runner
	packages    map[string]string // name -> package id
	launchDelay time.Duration
	log         *zap.Logger
	sleep       func(time.Duration)
}

func New(runner domain.Runner, packages map[string]string, launchDelay time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		runner:      runner,
		packages:    packages,
		launchDelay: launchDelay,
		log:         log,
		sleep:       time.Sleep,
	}
}

// Launch starts name's package via the monkey launcher intent.
func (s *Service) Launch(ctx context.Context, name string) error {
	pkg, ok := s.packages[name]
	if !ok {
		return fmt.Errorf("unknown app %q (see `droidctl app list`)", name)
	}
	s.log.Debug("launching app", zap.String("name", name), zap.String("package", pkg))
	_, err := s.runner.Shell(ctx, "monkey", "-p", pkg, "-c", "android.intent.category.LAUNCHER", "1")
	if err != nil {
		return err
	}
	s.sleep(s.launchDelay)
	return nil
}

// Current reports which known app holds window focus, or HomeName.
func (s *Service) Current(ctx context.Context) (string, error) {
	out, err := s.runner.Shell(ctx, "dumpsys", "window")
	if err != nil {
		return "", err
	}
	for _, line := range parse.FocusLines(out) {
		for name, pkg := range s.packages {
			if strings.Contains(line, pkg) {
				return name, nil
			}
		}
	}
	return HomeName, nil
}

// Known returns the registered app names, sorted.
func (s *Service) Known() []string {
	names := make([]string, 0, len(s.packages))
	for name := range s.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ domain.AppService = (*Service)(nil)
