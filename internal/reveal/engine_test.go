// ABOUTME: Tests for Engine.Run with a scripted watcher and an injected clock
// ABOUTME: Covers completion, user and signal cancellation, resize, and release-then-report

package reveal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/unveilox/internal/speed"
	"github.com/mauromedda/unveilox/pkg/tui/input"
	"github.com/mauromedda/unveilox/pkg/tui/key"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
	"github.com/mauromedda/unveilox/pkg/tui/theme"
	"github.com/mauromedda/unveilox/pkg/tui/width"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

// step is one scripted Poll result. elapsed advances the clock before it is
// returned; do runs first, for injecting failures mid-reveal.
type step struct {
	ev      input.Event
	elapsed time.Duration
	do      func()
}

type scriptedWatcher struct {
	clock    *fakeClock
	steps    []step
	timeouts []time.Duration
}

func (s *scriptedWatcher) Poll(_ context.Context, timeout time.Duration) input.Event {
	s.timeouts = append(s.timeouts, timeout)
	if len(s.steps) == 0 {
		return input.Event{Type: input.EventError, Err: errors.New("script exhausted")}
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	if st.do != nil {
		st.do()
	}
	s.clock.t = s.clock.t.Add(st.elapsed)
	return st.ev
}

func ticks(n int, interval time.Duration) []step {
	out := make([]step, n)
	for i := range out {
		out[i] = step{ev: input.Event{Type: input.EventTimeout}, elapsed: interval}
	}
	return out
}

func keyStep(k key.Key) step {
	return step{ev: input.Event{Type: input.EventKey, Key: k}}
}

var quit = key.Key{Type: key.KeyRune, Rune: 'q'}

func newEngine(vt *terminal.VirtualTerminal, steps ...step) (*Engine, *scriptedWatcher) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	w := &scriptedWatcher{clock: clock, steps: steps}
	return &Engine{Terminal: vt, Watcher: w, Now: clock.Now}, w
}

// visible strips escapes and line controls, leaving the revealed characters.
func visible(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(width.StripANSI(s))
}

func assertReleased(t *testing.T, vt *terminal.VirtualTerminal) {
	t.Helper()
	assert.False(t, vt.IsRawMode(), "raw mode left on")
	assert.False(t, vt.InAltScreen(), "alt screen left on")
	assert.False(t, vt.CursorHidden(), "cursor left hidden")
}

func TestTypewriterCompletes(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	tw := NewTypewriter("hello", speed.New(10), theme.Palette{})
	e, w := newEngine(vt, ticks(5, 10*time.Millisecond)...)

	out, err := e.Run(context.Background(), tw)
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Equal(t, 5, tw.Emitted())
	assert.Equal(t, "hello", visible(vt.Output()))
	assert.True(t, strings.HasSuffix(width.StripANSI(vt.Output()), "hello\r\n"))
	assert.Len(t, w.timeouts, 5)
	for _, d := range w.timeouts {
		assert.Equal(t, 10*time.Millisecond, d)
	}
	assertReleased(t, vt)
}

func TestTypewriterEmptyTextCompletesWithoutPolling(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	e, w := newEngine(vt)

	out, err := e.Run(context.Background(), NewTypewriter("", speed.Default(), theme.Palette{}))
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Empty(t, w.timeouts)
	assertReleased(t, vt)
}

func TestTypewriterCancelAfterN(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 3, 9} {
		vt := terminal.NewVirtualTerminal(80, 24)
		text := "abcdefghij"
		tw := NewTypewriter(text, speed.New(5), theme.Builtin("default").Palette)
		steps := append(ticks(n, 5*time.Millisecond), keyStep(quit))
		e, _ := newEngine(vt, steps...)

		out, err := e.Run(context.Background(), tw)
		require.NoError(t, err)
		assert.Equal(t, CancelledByUser, out)
		assert.Equal(t, 0, out.ExitCode())
		assert.Equal(t, n, tw.Emitted())
		assert.Equal(t, text[:n], visible(vt.Output()), "partial text stays on screen")
		assertReleased(t, vt)
		assert.Equal(t, 1, vt.ExitCount())
	}
}

func TestTypewriterCancelKeys(t *testing.T) {
	t.Parallel()

	for _, k := range []key.Key{
		{Type: key.KeyEscape},
		{Type: key.KeyEnter},
		{Type: key.KeyCtrlC, Ctrl: true},
		quit,
	} {
		vt := terminal.NewVirtualTerminal(80, 24)
		e, _ := newEngine(vt, keyStep(k))
		out, err := e.Run(context.Background(), NewTypewriter("abc", speed.Default(), theme.Palette{}))
		require.NoError(t, err)
		assert.Equal(t, CancelledByUser, out, "key %s", k)
	}
}

func TestTypewriterIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	steps := []step{keyStep(key.Key{Type: key.KeyRune, Rune: 'x'})}
	steps = append(steps, ticks(3, time.Millisecond)...)
	e, _ := newEngine(vt, steps...)

	tw := NewTypewriter("abc", speed.New(1), theme.Palette{})
	out, err := e.Run(context.Background(), tw)
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Equal(t, 3, tw.Emitted())
}

func TestTypewriterResizeKeepsDeadline(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	const interval = 100 * time.Millisecond
	steps := ticks(4, interval)
	steps = append(steps,
		step{ev: input.Event{Type: input.EventResize, Width: 5, Height: 24}, elapsed: 30 * time.Millisecond},
		step{ev: input.Event{Type: input.EventTimeout}, elapsed: 70 * time.Millisecond},
	)
	steps = append(steps, ticks(5, interval)...)
	e, w := newEngine(vt, steps...)

	tw := NewTypewriter("abcdefghij", speed.New(100), theme.Palette{})
	out, err := e.Run(context.Background(), tw)
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Equal(t, 10, tw.Emitted())

	require.Len(t, w.timeouts, 11)
	assert.Equal(t, interval, w.timeouts[4])
	assert.Equal(t, 70*time.Millisecond, w.timeouts[5], "resize must not restart the delay")

	redraw := vt.Output()[strings.LastIndex(vt.Output(), "\x1b[J")+len("\x1b[J"):]
	assert.True(t, strings.HasPrefix(width.StripANSI(redraw), "abcd"))
	assert.Contains(t, width.StripANSI(redraw), "abcde\r\nfghij")
	assertReleased(t, vt)
}

func TestTypewriterInterrupt(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	steps := append(ticks(2, time.Millisecond), step{ev: input.Event{Type: input.EventInterrupt}})
	e, _ := newEngine(vt, steps...)

	tw := NewTypewriter("abcdef", speed.New(1), theme.Palette{})
	out, err := e.Run(context.Background(), tw)
	require.NoError(t, err)
	assert.Equal(t, CancelledBySignal, out)
	assert.Equal(t, 130, out.ExitCode())
	assert.Equal(t, 2, tw.Emitted())
	assertReleased(t, vt)
}

func TestWriteErrorReportedAfterRelease(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	boom := errors.New("device gone")
	steps := ticks(2, time.Millisecond)
	steps = append(steps, step{
		ev: input.Event{Type: input.EventTimeout},
		do: func() { vt.FailWrites(boom) },
	})
	e, _ := newEngine(vt, steps...)

	_, err := e.Run(context.Background(), NewTypewriter("abcdef", speed.New(1), theme.Palette{}))
	require.ErrorIs(t, err, boom)
	assert.False(t, vt.IsRawMode(), "guard must be released before the error is reported")
	assert.Equal(t, 1, vt.ExitCount())

	// Still-failing writes stop a new guard at the cursor step, not at the slot check.
	_, err = terminal.Acquire(vt, terminal.ModeRaw)
	require.ErrorIs(t, err, terminal.ErrAcquisitionFailed)
	assert.NotErrorIs(t, err, terminal.ErrBusy, "terminal slot must be free again")

	vt.FailWrites(nil)
	g, err := terminal.Acquire(vt, terminal.ModeRaw)
	require.NoError(t, err)
	g.Release()
}

func TestInputErrorEndsReveal(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	e, _ := newEngine(vt, step{ev: input.Event{Type: input.EventError, Err: errors.New("eof")}})

	_, err := e.Run(context.Background(), NewTypewriter("abc", speed.Default(), theme.Palette{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
	assertReleased(t, vt)
}

func TestAcquisitionFailureTouchesNothing(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.FailRawMode(errors.New("not a tty"))
	e, w := newEngine(vt)

	_, err := e.Run(context.Background(), NewTypewriter("abc", speed.Default(), theme.Palette{}))
	require.ErrorIs(t, err, terminal.ErrAcquisitionFailed)
	assert.Empty(t, w.timeouts)
	assert.Empty(t, vt.Output())
}

func TestBusyTerminal(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	g, err := terminal.Acquire(vt, terminal.ModeRaw)
	require.NoError(t, err)
	defer g.Release()

	e, w := newEngine(vt)
	_, err = e.Run(context.Background(), NewTypewriter("abc", speed.Default(), theme.Palette{}))
	require.ErrorIs(t, err, terminal.ErrBusy)
	assert.Empty(t, w.timeouts)
	assert.True(t, vt.IsRawMode(), "the live guard must be untouched")
}

func TestScreenCancelCompletes(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(60, 20)
	steps := []step{
		{ev: input.Event{Type: input.EventTimeout}},
		{ev: input.Event{Type: input.EventResize, Width: 40, Height: 12}},
		keyStep(key.Key{Type: key.KeyRune, Rune: 'z'}),
		keyStep(key.Key{Type: key.KeyEnter}),
	}
	e, w := newEngine(vt, steps...)

	sc := NewScreen("Ozymandias", "I met a traveller from an antique land", theme.Palette{})
	out, err := e.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, Completed, out)
	assert.Equal(t, 2, sc.Draws())
	assert.Equal(t, 2, strings.Count(vt.Output(), seqHomeClear))
	for _, d := range w.timeouts {
		assert.Equal(t, idleTimeout, d)
	}
	assert.Contains(t, vt.Output(), "Ozymandias")
	assertReleased(t, vt)
}

func TestScreenInterrupt(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(60, 20)
	e, _ := newEngine(vt, step{ev: input.Event{Type: input.EventInterrupt}})

	out, err := e.Run(context.Background(), NewScreen("t", "text", theme.Palette{}))
	require.NoError(t, err)
	assert.Equal(t, CancelledBySignal, out)
	assertReleased(t, vt)
}

func TestZeroSizeFallsBack(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(0, 0)
	e, _ := newEngine(vt, keyStep(quit))

	sc := NewScreen("t", "text", theme.Palette{})
	_, err := e.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Contains(t, vt.Output(), "╭")
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "cancelled by user", CancelledByUser.String())
	assert.Equal(t, "cancelled by signal", CancelledBySignal.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
	assert.Equal(t, 1, Outcome(9).ExitCode())
}
