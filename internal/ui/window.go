// Package ui is the TaskPomodoro window: a start screen, a working screen
// and a resting screen driven by a timer.Controller.
package ui

import (
	"errors"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"taskpomodoro/internal/session"
	"taskpomodoro/internal/timer"
)

// Timer is the part of timer.Controller the window drives.
type Timer interface {
	StartWork() error
	BeginRest() error
	StartRest() error
	TogglePause() (bool, error)
	Stop() error
}

type SoundToggle interface {
	Enabled() bool
	SetEnabled(bool)
}

type Options struct {
	Title  string
	Width  float32
	Height float32
	// Sound backs the "Sound alerts" checkbox; nil hides it.
	Sound  SoundToggle
	Logger *slog.Logger
}

type screen int

const (
	screenStart screen = iota
	screenWorking
	screenResting
)

type MainWindow struct {
	app    fyne.App
	window fyne.Window
	timer  Timer
	log    *slog.Logger
	title  string

	start *startPage
	work  *timerPage
	rest  *timerPage
	body  *fyne.Container
	tray  *tray

	mu     sync.Mutex
	screen screen
	last   timer.Snapshot
}

func NewMainWindow(a fyne.App, t Timer, opts Options) *MainWindow {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a.Settings().SetTheme(darkTheme{})
	icon := ClockIcon(accentWarm)
	a.SetIcon(icon)

	w := &MainWindow{
		app:    a,
		window: a.NewWindow(opts.Title),
		timer:  t,
		log:    logger,
		title:  opts.Title,
	}
	w.window.SetIcon(icon)

	w.start = newStartPage(opts.Title, w.showWorking)
	w.work = newTimerPage(workTimer, timerActions{
		start:     w.startWork,
		pause:     w.togglePause,
		stop:      w.confirmStop,
		longPress: w.goResting,
		hint:      w.Toast,
	})
	w.rest = newTimerPage(restTimer, timerActions{
		start:     w.startRest,
		pause:     w.togglePause,
		stop:      w.confirmStop,
		longPress: w.skipResting,
		hint:      w.Toast,
	})
	w.body = container.NewStack(w.start.content)

	bottom := container.NewHBox(layout.NewSpacer())
	if opts.Sound != nil {
		bottom.Add(newSoundCheck(opts.Sound, w.Toast))
	}

	w.window.SetContent(container.NewBorder(nil, container.NewPadded(bottom), nil, nil, w.body))
	w.window.Resize(fyne.NewSize(opts.Width, opts.Height))
	w.window.SetMaster()

	w.tray = newTray(a, w.window, opts.Title, icon)
	return w
}

func newSoundCheck(s SoundToggle, toast func(string)) *widget.Check {
	check := widget.NewCheck("Sound alerts", nil)
	check.Checked = s.Enabled()
	check.OnChanged = func(on bool) {
		s.SetEnabled(on)
		if on {
			toast("Sound alerts on")
		} else {
			toast("Sound alerts off")
		}
	}
	return check
}

func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// ShowAndRun blocks until the window is closed.
func (w *MainWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// Update redraws the timer screens for s. It is safe to call from the
// timer loop goroutine.
func (w *MainWindow) Update(s timer.Snapshot) {
	w.mu.Lock()
	w.last = s
	w.mu.Unlock()

	w.work.update(s)
	w.rest.update(s)
	w.tray.update(s)
}

// RestComplete returns to the working screen once the rest has run out.
func (w *MainWindow) RestComplete() {
	w.showWorking()
}

func (w *MainWindow) Toast(message string) {
	ShowToast(w.window.Canvas(), message)
}

func (w *MainWindow) currentScreen() screen {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.screen
}

func (w *MainWindow) show(s screen) {
	w.mu.Lock()
	w.screen = s
	last := w.last
	w.mu.Unlock()

	var page fyne.CanvasObject
	switch s {
	case screenWorking:
		w.work.update(last)
		page = w.work.content
	case screenResting:
		w.rest.update(last)
		page = w.rest.content
	default:
		page = w.start.content
	}
	w.body.Objects = []fyne.CanvasObject{page}
	w.body.Refresh()
}

func (w *MainWindow) showStart()   { w.show(screenStart) }
func (w *MainWindow) showWorking() { w.show(screenWorking) }
func (w *MainWindow) showResting() { w.show(screenResting) }

func (w *MainWindow) startWork() {
	if err := w.timer.StartWork(); err != nil {
		w.log.Warn("start work", "error", err)
	}
}

func (w *MainWindow) startRest() {
	if err := w.timer.StartRest(); err != nil {
		w.log.Warn("start rest", "error", err)
	}
}

func (w *MainWindow) togglePause() {
	if _, err := w.timer.TogglePause(); err != nil {
		w.log.Warn("toggle pause", "error", err)
	}
}

func (w *MainWindow) goResting() {
	err := w.timer.BeginRest()
	switch {
	case errors.Is(err, session.ErrInvalidTransition):
		w.Toast("Start the work timer first")
		return
	case err != nil:
		w.log.Warn("begin rest", "error", err)
		return
	}
	w.showResting()
}

func (w *MainWindow) skipResting() {
	w.reset()
	w.showWorking()
}

func (w *MainWindow) confirmStop() {
	d := dialog.NewConfirm("Confirmation", "Are you sure you want to reset everything?", func(ok bool) {
		if !ok {
			return
		}
		w.reset()
		w.showStart()
	}, w.window)
	d.SetConfirmText("Reset")
	d.SetDismissText("Cancel")
	d.Show()
}

func (w *MainWindow) reset() {
	if err := w.timer.Stop(); err != nil {
		w.log.Warn("stop", "error", err)
	}
}
