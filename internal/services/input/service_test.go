package input

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droidctl/internal/config"
	"droidctl/internal/domain"
	"droidctl/internal/touch"
)

type fakeRunner struct {
	calls  []string
	fail   map[string]error // by prefix of the joined args
	output string
}

func (f *fakeRunner) Output(_ context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	for prefix, err := range f.fail {
		if strings.HasPrefix(key, prefix) {
			return "", err
		}
	}
	return f.output, nil
}

func (f *fakeRunner) Shell(ctx context.Context, args ...string) (string, error) {
	return f.Output(ctx, append([]string{"shell"}, args...)...)
}

func (f *fakeRunner) SuShell(ctx context.Context, script string) (string, error) {
	return f.Output(ctx, "shell", "su", "-c", "'"+script+"'")
}

func (f *fakeRunner) RawOutput(ctx context.Context, args ...string) ([]byte, error) {
	out, err := f.Output(ctx, append([]string{"exec-out"}, args...)...)
	return []byte(out), err
}

type fakeDevice struct {
	rooted    bool
	touchPath string
}

func (f *fakeDevice) Devices(context.Context) ([]domain.Device, error) { return nil, nil }
func (f *fakeDevice) Rooted(context.Context) (bool, error)             { return f.rooted, nil }
func (f *fakeDevice) Resolution(context.Context) (domain.Size, error) {
	return domain.Size{W: 1080, H: 2400}, nil
}
func (f *fakeDevice) TouchDevice(context.Context) (string, bool, error) {
	return f.touchPath, f.touchPath != "", nil
}
func (f *fakeDevice) TouchRange(context.Context) (domain.TouchRange, error) {
	return domain.TouchRange{XMax: 1079, YMax: 2399, PressureMax: 255, TouchMajorMax: 127}, nil
}

var (
	_ domain.Runner        = (*fakeRunner)(nil)
	_ domain.DeviceService = (*fakeDevice)(nil)
)

// newService wires a Service with no real sleeping and a fixed rand seed.
func newService(runner *fakeRunner, dev *fakeDevice) *Service {
	s := New(runner, dev, config.Timing{}, touch.NewHumanizer(rand.New(rand.NewSource(1))), nil)
	s.sleep = func(time.Duration) {}
	return s
}

func TestTap_InputMethod(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	err := svc.Tap(context.Background(), domain.Point{X: 500, Y: 800},
		domain.TapOptions{Method: domain.TapInput, Delay: -1})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "shell input tap 500 800", runner.calls[0])
}

func TestTap_RejectsNegative(t *testing.T) {
	svc := newService(&fakeRunner{}, &fakeDevice{})
	err := svc.Tap(context.Background(), domain.Point{X: -1, Y: 5},
		domain.TapOptions{Method: domain.TapInput, Delay: -1})
	assert.Error(t, err)
}

func TestTap_AutoRooted_UsesSendevent(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{rooted: true, touchPath: "/dev/input/event2"})

	err := svc.Tap(context.Background(), domain.Point{X: 500, Y: 800},
		domain.TapOptions{Method: domain.TapAuto, Humanize: true, Delay: -1})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.True(t, strings.HasPrefix(call, "shell su -c '"), "call: %s", call)
	assert.Contains(t, call, "sendevent /dev/input/event2 1 330 1")
	assert.Contains(t, call, "sendevent /dev/input/event2 3 57 -1")
}

func TestTap_AutoRooted_FallsBackOnFailure(t *testing.T) {
	runner := &fakeRunner{fail: map[string]error{"shell su -c": errors.New("su: permission denied")}}
	svc := newService(runner, &fakeDevice{rooted: true, touchPath: "/dev/input/event2"})

	err := svc.Tap(context.Background(), domain.Point{X: 100, Y: 200},
		domain.TapOptions{Method: domain.TapAuto, Humanize: true, Delay: -1})
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "shell input tap 100 200", runner.calls[1])
}

func TestTap_AutoUnrooted_UsesSwipeFallback(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{rooted: false})

	err := svc.Tap(context.Background(), domain.Point{X: 500, Y: 800},
		domain.TapOptions{Method: domain.TapAuto, Humanize: true, Delay: -1})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.True(t, strings.HasPrefix(runner.calls[0], "shell input swipe "), "call: %s", runner.calls[0])
}

func TestTap_ForcedSendevent_ErrorsWithoutTouchDevice(t *testing.T) {
	svc := newService(&fakeRunner{}, &fakeDevice{rooted: true})
	err := svc.Tap(context.Background(), domain.Point{X: 1, Y: 1},
		domain.TapOptions{Method: domain.TapSendevent, Delay: -1})
	assert.Error(t, err)
}

func TestTap_SwipeMethod_NoHumanize(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	err := svc.Tap(context.Background(), domain.Point{X: 300, Y: 400},
		domain.TapOptions{Method: domain.TapSwipe, Humanize: false, Delay: -1})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "shell input swipe 300 400 300 400 100", runner.calls[0])
}

func TestDoubleTap(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	err := svc.DoubleTap(context.Background(), domain.Point{X: 10, Y: 20})
	require.NoError(t, err)

	assert.Equal(t, []string{"shell input tap 10 20", "shell input tap 10 20"}, runner.calls)
}

func TestLongPress(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	t.Run("explicit duration", func(t *testing.T) {
		runner.calls = nil
		require.NoError(t, svc.LongPress(context.Background(), domain.Point{X: 5, Y: 6}, 1500*time.Millisecond))
		assert.Equal(t, []string{"shell input swipe 5 6 5 6 1500"}, runner.calls)
	})

	t.Run("default duration", func(t *testing.T) {
		runner.calls = nil
		require.NoError(t, svc.LongPress(context.Background(), domain.Point{X: 5, Y: 6}, 0))
		assert.Equal(t, []string{"shell input swipe 5 6 5 6 3000"}, runner.calls)
	})
}

func TestSwipe(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	t.Run("explicit duration", func(t *testing.T) {
		runner.calls = nil
		err := svc.Swipe(context.Background(), domain.Point{X: 0, Y: 1000}, domain.Point{X: 0, Y: 200}, 300*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, []string{"shell input swipe 0 1000 0 200 300"}, runner.calls)
	})

	t.Run("derived duration clamps low", func(t *testing.T) {
		runner.calls = nil
		// distance^2/1000 = 100 -> clamped up to 1000ms
		err := svc.Swipe(context.Background(), domain.Point{X: 0, Y: 0}, domain.Point{X: 0, Y: 316}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"shell input swipe 0 0 0 316 1000"}, runner.calls)
	})

	t.Run("derived duration clamps high", func(t *testing.T) {
		runner.calls = nil
		// 2000^2/1000 = 4000 -> clamped down to 2000ms
		err := svc.Swipe(context.Background(), domain.Point{X: 0, Y: 2000}, domain.Point{X: 0, Y: 0}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"shell input swipe 0 2000 0 0 2000"}, runner.calls)
	})

	t.Run("derived duration in range", func(t *testing.T) {
		runner.calls = nil
		// 1200^2/1000 = 1440ms
		err := svc.Swipe(context.Background(), domain.Point{X: 0, Y: 1200}, domain.Point{X: 0, Y: 0}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"shell input swipe 0 1200 0 0 1440"}, runner.calls)
	})
}

func TestBackAndHome(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	require.NoError(t, svc.Back(context.Background()))
	require.NoError(t, svc.Home(context.Background()))
	assert.Equal(t, []string{
		"shell input keyevent 4",
		"shell input keyevent KEYCODE_HOME",
	}, runner.calls)
}

func TestText(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner, &fakeDevice{})

	require.NoError(t, svc.Text(context.Background(), "hello world"))
	assert.Equal(t, []string{"shell input text hello%sworld"}, runner.calls)
}

func TestEscapeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "hello"},
		{"hello world", "hello%sworld"},
		{`a&b`, `a\&b`},
		{`it's`, `it\'s`},
		{`5 > 3; echo`, `5%s\>%s3\;%secho`},
		{"p$q", `p\$q`},
	}
	for _, tc := range cases {
		if got := EscapeText(tc.in); got != tc.want {
			t.Fatalf("EscapeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
