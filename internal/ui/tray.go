package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"taskpomodoro/internal/session"
	"taskpomodoro/internal/timer"
)

// tray mirrors the running timer in the system tray tooltip. It is a no-op
// when the driver has no tray.
type tray struct {
	title   string
	enabled bool
	last    string
}

func newTray(a fyne.App, w fyne.Window, title string, icon fyne.Resource) *tray {
	t := &tray{title: title}
	desk, ok := a.(desktop.App)
	if !ok {
		return t
	}
	desk.SetSystemTrayMenu(fyne.NewMenu(title,
		fyne.NewMenuItem("Show", w.Show),
	))
	desk.SetSystemTrayIcon(icon)
	t.enabled = true
	return t
}

func (t *tray) update(s timer.Snapshot) {
	text := trayText(t.title, s)
	if !t.enabled || text == t.last {
		return
	}
	t.last = text
	systray.SetTooltip(text)
}

func trayText(title string, s timer.Snapshot) string {
	switch s.Phase {
	case session.Working:
		return "Working " + session.FormatClock(s.ElapsedWorkSeconds)
	case session.Paused:
		return "Paused " + session.FormatClock(s.ElapsedWorkSeconds)
	case session.Resting:
		label := "Resting "
		switch {
		case !s.RestStarted:
			label = "Rest ready "
		case !s.Running:
			label = "Rest paused "
		}
		return label + session.FormatClock(s.RestRemainingSeconds)
	}
	return title
}
