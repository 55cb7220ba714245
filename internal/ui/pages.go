package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"taskpomodoro/internal/session"
	"taskpomodoro/internal/timer"
)

type startPage struct {
	button  *RoundedButton
	content fyne.CanvasObject
}

func newStartPage(title string, onStart func()) *startPage {
	icon := canvas.NewImageFromResource(ClockIcon(accentWarm))
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(80, 80))

	heading := canvas.NewText(title, textPrimary)
	heading.TextSize = textSizeHeading
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	btn := NewRoundedButton("Start Work", accentWarm, accentWarmHover, onStart)
	btn.SetMinSize(fyne.NewSize(150, 48))
	btn.SetTextSize(textSizeLarge)

	return &startPage{
		button: btn,
		content: container.NewCenter(container.NewVBox(
			container.NewCenter(icon),
			heading,
			verticalGap(40),
			container.NewCenter(btn),
		)),
	}
}

type timerKind int

const (
	workTimer timerKind = iota
	restTimer
)

type timerActions struct {
	start     func()
	pause     func()
	stop      func()
	longPress func()
	hint      func(string)
}

// timerPage is the working or the resting screen. Both share the layout
// and differ in labels, accent and which counter they show.
type timerPage struct {
	kind    timerKind
	clock   *canvas.Text
	start   *RoundedButton
	pause   *RoundedButton
	stop    *RoundedButton
	alt     *RoundedButton
	content fyne.CanvasObject
}

func newTimerPage(kind timerKind, act timerActions) *timerPage {
	title, accent, accentHover := "Work Timer", accentWarm, accentWarmHover
	altText, altHint := "Go Resting", "Long press to go resting"
	if kind == restTimer {
		title, accent, accentHover = "Rest Timer", accentCool, accentCoolHover
		altText, altHint = "Skip Resting", "Long press to skip resting"
	}

	heading := canvas.NewText(title, textPrimary)
	heading.TextSize = textSizeTitle
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	clock := canvas.NewText(session.FormatClock(0), textPrimary)
	clock.TextSize = textSizeTimer
	clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.Alignment = fyne.TextAlignCenter

	p := &timerPage{
		kind:  kind,
		clock: clock,
		start: NewRoundedButton("Start", accent, accentHover, act.start),
		pause: NewRoundedButton("Pause", bgTertiary, bgHover, act.pause),
		stop:  NewRoundedButton("Stop", dangerColor, dangerHover, act.stop),
		alt:   NewLongPressButton(altText, altHint, bgSecondary, bgTertiary, act.longPress),
	}
	p.pause.SetDisabled(true)
	p.alt.SetMinSize(fyne.NewSize(140, 40))
	p.alt.OnHint = act.hint

	p.content = container.NewCenter(container.NewVBox(
		heading,
		verticalGap(20),
		clock,
		verticalGap(30),
		container.NewCenter(container.NewHBox(p.start, p.pause, p.stop)),
		verticalGap(25),
		container.NewCenter(p.alt),
	))
	return p
}

// update shows s. Buttons follow the session: Start only while it can
// start, Pause only while there is something to pause or resume.
func (p *timerPage) update(s timer.Snapshot) {
	var (
		seconds       int
		canStart      bool
		canPause      bool
		showingResume bool
	)
	switch p.kind {
	case workTimer:
		seconds = s.ElapsedWorkSeconds
		canStart = s.Phase == session.Idle
		canPause = s.Phase == session.Working || s.Phase == session.Paused
		showingResume = s.Phase == session.Paused
	case restTimer:
		seconds = s.RestRemainingSeconds
		canStart = s.Phase == session.Resting && !s.RestStarted
		canPause = s.Phase == session.Resting && s.RestStarted
		showingResume = canPause && !s.Running
	}

	if text := session.FormatClock(seconds); p.clock.Text != text {
		p.clock.Text = text
		p.clock.Refresh()
	}
	p.start.SetDisabled(!canStart)
	p.pause.SetDisabled(!canPause)
	if showingResume {
		p.pause.SetText("Resume")
	} else {
		p.pause.SetText("Pause")
	}
}

func verticalGap(height float32) fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(1, height))
	return gap
}
