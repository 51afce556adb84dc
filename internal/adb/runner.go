package adb

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"droidctl/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Runner shells out to adb, optionally pinned to one device with -s.
type Runner struct {
	bin     string
	serial  string
	timeout time.Duration
	log     *zap.Logger
}

func New(bin, serial string, timeout time.Duration, log *zap.Logger) *Runner {
	if bin == "" {
		bin = "adb"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{bin: bin, serial: serial, timeout: timeout, log: log}
}

// Available reports whether the adb binary can be found.
func Available(bin string) bool {
	if bin == "" {
		bin = "adb"
	}
	_, err := exec.LookPath(bin)
	return err == nil
}

// argv builds the full adb argument list, inserting -s for a pinned device.
func argv(serial string, args []string) []string {
	if serial == "" {
		return args
	}
	return append([]string{"-s", serial}, args...)
}

func (r *Runner) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	full := argv(r.serial, args)
	cmd := exec.CommandContext(ctx, r.bin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.log.Debug("adb",
		zap.Strings("args", full),
		zap.Duration("took", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		return stdout.Bytes(), fmt.Errorf("%s %s failed: %w\n%s",
			r.bin, strings.Join(full, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func (r *Runner) Output(ctx context.Context, args ...string) (string, error) {
	out, err := r.run(ctx, args...)
	return string(out), err
}

func (r *Runner) Shell(ctx context.Context, args ...string) (string, error) {
	return r.Output(ctx, append([]string{"shell"}, args...)...)
}

// SuShell runs script in a root shell. The script is single-quoted the way
// `adb shell su -c` expects.
func (r *Runner) SuShell(ctx context.Context, script string) (string, error) {
	return r.Output(ctx, "shell", "su", "-c", "'"+script+"'")
}

// RawOutput runs `adb exec-out`, which does not mangle binary stdout.
func (r *Runner) RawOutput(ctx context.Context, args ...string) ([]byte, error) {
	return r.run(ctx, append([]string{"exec-out"}, args...)...)
}

var _ domain.Runner = (*Runner)(nil)
