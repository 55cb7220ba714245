package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpomodoro/internal/session"
	"taskpomodoro/internal/sound"
	"taskpomodoro/internal/timer"
)

type harness struct {
	win   *MainWindow
	ctrl  *timer.Controller
	ticks chan time.Time
	sound *sound.Player
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	h := &harness{
		ticks: make(chan time.Time),
		sound: sound.NewPlayer(0, false),
	}
	h.ctrl = timer.New(timer.Options{
		Ticker: func(time.Duration) (<-chan time.Time, func()) {
			return h.ticks, func() {}
		},
		OnChange:       func(s timer.Snapshot) { h.win.Update(s) },
		OnRestComplete: func() { h.win.RestComplete() },
	})
	h.win = NewMainWindow(a, h.ctrl, Options{
		Title:  "TaskPomodoro",
		Width:  500,
		Height: 650,
		Sound:  h.sound,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = h.ctrl.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return h
}

func (h *harness) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.ticks <- time.Time{}
	}
	// Snapshot is answered after every queued tick has been applied.
	_, err := h.ctrl.Snapshot()
	require.NoError(t, err)
}

func TestStartScreenLeadsToIdleWorkScreen(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, screenStart, h.win.currentScreen())

	test.Tap(h.win.start.button)
	assert.Equal(t, screenWorking, h.win.currentScreen())
	assert.Equal(t, "00:00:00", h.win.work.clock.Text)
	assert.False(t, h.win.work.start.Disabled())
	assert.True(t, h.win.work.pause.Disabled())
}

func TestWorkControls(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.win.start.button)

	test.Tap(h.win.work.start)
	assert.True(t, h.win.work.start.Disabled())
	assert.False(t, h.win.work.pause.Disabled())

	h.tick(t, 3)
	assert.Equal(t, "00:00:03", h.win.work.clock.Text)

	test.Tap(h.win.work.pause)
	assert.Equal(t, "Resume", h.win.work.pause.Text())

	test.Tap(h.win.work.pause)
	assert.Equal(t, "Pause", h.win.work.pause.Text())
	h.tick(t, 1)
	assert.Equal(t, "00:00:04", h.win.work.clock.Text)
}

func TestGoRestingNeedsWork(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.win.start.button)

	h.win.goResting()
	assert.Equal(t, screenWorking, h.win.currentScreen())
	assert.NotNil(t, h.win.Window().Canvas().Overlays().Top(), "expected a toast")
}

func TestRestCycle(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.win.start.button)
	test.Tap(h.win.work.start)
	h.tick(t, 50*60)

	h.win.goResting()
	require.Equal(t, screenResting, h.win.currentScreen())
	assert.Equal(t, "00:10:00", h.win.rest.clock.Text)
	assert.False(t, h.win.rest.start.Disabled())
	assert.True(t, h.win.rest.pause.Disabled())

	test.Tap(h.win.rest.start)
	assert.False(t, h.win.rest.pause.Disabled())
	h.tick(t, 30)
	assert.Equal(t, "00:09:30", h.win.rest.clock.Text)

	h.tick(t, 570)
	assert.Equal(t, screenWorking, h.win.currentScreen())
	assert.Equal(t, "00:00:00", h.win.work.clock.Text)
	assert.False(t, h.win.work.start.Disabled())
}

func TestSkipRestingResets(t *testing.T) {
	h := newHarness(t)
	test.Tap(h.win.start.button)
	test.Tap(h.win.work.start)
	h.tick(t, 5)
	h.win.goResting()

	h.win.skipResting()
	assert.Equal(t, screenWorking, h.win.currentScreen())

	snap, err := h.ctrl.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, session.Idle, snap.Phase)
	assert.Zero(t, snap.ElapsedWorkSeconds)
}

func TestSoundCheckTogglesPlayer(t *testing.T) {
	test.NewApp()
	toasts := 0
	p := sound.NewPlayer(0, true)
	check := newSoundCheck(p, func(string) { toasts++ })
	assert.True(t, check.Checked)

	test.Tap(check)
	assert.False(t, p.Enabled())
	test.Tap(check)
	assert.True(t, p.Enabled())
	assert.Equal(t, 2, toasts)
}

func TestTrayText(t *testing.T) {
	tests := []struct {
		name string
		snap timer.Snapshot
		want string
	}{
		{name: "idle", snap: timer.Snapshot{}, want: "TaskPomodoro"},
		{name: "working", snap: timer.Snapshot{Phase: session.Working, ElapsedWorkSeconds: 61, Running: true}, want: "Working 00:01:01"},
		{name: "paused", snap: timer.Snapshot{Phase: session.Paused, ElapsedWorkSeconds: 5}, want: "Paused 00:00:05"},
		{name: "rest ready", snap: timer.Snapshot{Phase: session.Resting, RestRemainingSeconds: 300}, want: "Rest ready 00:05:00"},
		{name: "resting", snap: timer.Snapshot{Phase: session.Resting, RestRemainingSeconds: 299, RestStarted: true, Running: true}, want: "Resting 00:04:59"},
		{name: "rest paused", snap: timer.Snapshot{Phase: session.Resting, RestRemainingSeconds: 10, RestStarted: true}, want: "Rest paused 00:00:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trayText("TaskPomodoro", tt.snap))
		})
	}
}

func TestClockIcon(t *testing.T) {
	res := ClockIcon(accentCool)
	assert.Equal(t, "clock-6b9fbe.svg", res.Name())
	assert.True(t, strings.Contains(string(res.Content()), `stroke="#6b9fbe"`))
}
