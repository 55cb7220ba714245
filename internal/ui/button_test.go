package ui

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestRoundedButtonTap(t *testing.T) {
	test.NewApp()
	var taps int32
	b := NewRoundedButton("Start", accentWarm, accentWarmHover, func() { atomic.AddInt32(&taps, 1) })

	test.Tap(b)
	assert.EqualValues(t, 1, atomic.LoadInt32(&taps))

	b.SetDisabled(true)
	test.Tap(b)
	assert.EqualValues(t, 1, atomic.LoadInt32(&taps))
	assert.Equal(t, desktop.DefaultCursor, b.Cursor())
}

func TestLongPressButtonShortPressShowsHint(t *testing.T) {
	test.NewApp()
	var fired int32
	var hint string
	b := NewLongPressButton("Go Resting", "Long press to go resting", bgSecondary, bgTertiary, func() {
		atomic.AddInt32(&fired, 1)
	})
	b.OnHint = func(h string) { hint = h }

	b.MouseDown(&desktop.MouseEvent{})
	b.MouseUp(&desktop.MouseEvent{})
	test.Tap(b)

	assert.Equal(t, "Long press to go resting", hint)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestLongPressButtonFiresAfterDelay(t *testing.T) {
	test.NewApp()
	var fired int32
	hinted := false
	b := NewLongPressButton("Skip Resting", "hint", bgSecondary, bgTertiary, func() {
		atomic.AddInt32(&fired, 1)
	})
	b.longPressDelay = 10 * time.Millisecond
	b.OnHint = func(string) { hinted = true }

	b.MouseDown(&desktop.MouseEvent{})
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&fired) == 1 }, time.Second, 5*time.Millisecond)
	b.MouseUp(&desktop.MouseEvent{})
	test.Tap(b)

	assert.False(t, hinted, "release after a long press must not count as a tap")
	assert.EqualValues(t, 1, atomic.LoadInt32(&fired))
}

func TestLongPressCancelledByLeaving(t *testing.T) {
	test.NewApp()
	var fired int32
	b := NewLongPressButton("Skip Resting", "hint", bgSecondary, bgTertiary, func() {
		atomic.AddInt32(&fired, 1)
	})
	b.longPressDelay = 30 * time.Millisecond

	b.MouseDown(&desktop.MouseEvent{})
	b.MouseOut()
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}

func TestRoundedButtonMinSize(t *testing.T) {
	test.NewApp()
	b := NewRoundedButton("Go", accentWarm, accentWarmHover, nil)
	b.SetMinSize(fyne.NewSize(150, 48))

	size := b.MinSize()
	assert.GreaterOrEqual(t, size.Width, float32(150))
	assert.GreaterOrEqual(t, size.Height, float32(48))
}

func TestToastHides(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(widget.NewLabel("content"))
	defer w.Close()
	w.Resize(fyne.NewSize(500, 650))

	pop := showToast(w.Canvas(), "Sound alerts on", 20*time.Millisecond)
	assert.True(t, pop.Visible())
	assert.Eventually(t, func() bool { return !pop.Visible() }, time.Second, 5*time.Millisecond)
}
