package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const defaultLongPress = 500 * time.Millisecond

// RoundedButton is a flat button with rounded corners and a hover color.
// A button built with NewLongPressButton only acts after being held; a
// short press reports its hint through OnHint instead.
type RoundedButton struct {
	widget.BaseWidget

	// OnHint receives the hint on a short press of a long-press button.
	OnHint func(hint string)

	mu             sync.Mutex
	text           string
	fill, hover    color.Color
	minSize        fyne.Size
	textSize       float32
	onTapped       func()
	onLongPress    func()
	hint           string
	longPressDelay time.Duration
	pressTimer     *time.Timer
	longFired      bool
	hovered        bool
	disabled       bool
}

var (
	_ fyne.Tappable      = (*RoundedButton)(nil)
	_ desktop.Hoverable  = (*RoundedButton)(nil)
	_ desktop.Mouseable  = (*RoundedButton)(nil)
	_ desktop.Cursorable = (*RoundedButton)(nil)
)

func NewRoundedButton(text string, fill, hover color.Color, tapped func()) *RoundedButton {
	b := &RoundedButton{
		text:           text,
		fill:           fill,
		hover:          hover,
		textSize:       theme.TextSize(),
		onTapped:       tapped,
		longPressDelay: defaultLongPress,
		minSize:        fyne.NewSize(90, 40),
	}
	b.ExtendBaseWidget(b)
	return b
}

func NewLongPressButton(text, hint string, fill, hover color.Color, longPress func()) *RoundedButton {
	b := NewRoundedButton(text, fill, hover, nil)
	b.hint = hint
	b.onLongPress = longPress
	return b
}

func (b *RoundedButton) SetText(text string) {
	b.mu.Lock()
	changed := b.text != text
	b.text = text
	b.mu.Unlock()
	if changed {
		b.Refresh()
	}
}

func (b *RoundedButton) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *RoundedButton) SetMinSize(size fyne.Size) {
	b.mu.Lock()
	b.minSize = size
	b.mu.Unlock()
	b.Refresh()
}

func (b *RoundedButton) SetTextSize(size float32) {
	b.mu.Lock()
	b.textSize = size
	b.mu.Unlock()
	b.Refresh()
}

func (b *RoundedButton) SetDisabled(disabled bool) {
	b.mu.Lock()
	changed := b.disabled != disabled
	b.disabled = disabled
	if disabled {
		b.cancelPressLocked()
	}
	b.mu.Unlock()
	if changed {
		b.Refresh()
	}
}

func (b *RoundedButton) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

func (b *RoundedButton) Tapped(*fyne.PointEvent) {
	b.mu.Lock()
	if b.disabled {
		b.mu.Unlock()
		return
	}
	if b.longFired {
		b.longFired = false
		b.mu.Unlock()
		return
	}
	tapped, hint, onHint := b.onTapped, b.hint, b.OnHint
	b.mu.Unlock()

	if tapped != nil {
		tapped()
		return
	}
	if hint != "" && onHint != nil {
		onHint(hint)
	}
}

func (b *RoundedButton) MouseDown(*desktop.MouseEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disabled || b.onLongPress == nil {
		return
	}
	b.longFired = false
	b.cancelPressLocked()
	b.pressTimer = time.AfterFunc(b.longPressDelay, b.fireLongPress)
}

func (b *RoundedButton) MouseUp(*desktop.MouseEvent) {
	b.mu.Lock()
	b.cancelPressLocked()
	b.mu.Unlock()
}

func (b *RoundedButton) MouseIn(*desktop.MouseEvent) {
	b.setHovered(true)
}

func (b *RoundedButton) MouseMoved(*desktop.MouseEvent) {}

func (b *RoundedButton) MouseOut() {
	b.mu.Lock()
	b.cancelPressLocked()
	b.mu.Unlock()
	b.setHovered(false)
}

func (b *RoundedButton) Cursor() desktop.Cursor {
	if b.Disabled() {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

func (b *RoundedButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.fill)
	bg.CornerRadius = cornerRadius
	label := canvas.NewText(b.text, textPrimary)
	label.Alignment = fyne.TextAlignCenter

	r := &roundedButtonRenderer{
		button:  b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
	r.Refresh()
	return r
}

func (b *RoundedButton) fireLongPress() {
	b.mu.Lock()
	if b.pressTimer == nil || b.disabled {
		b.mu.Unlock()
		return
	}
	b.pressTimer = nil
	b.longFired = true
	fn := b.onLongPress
	b.mu.Unlock()

	fn()
}

func (b *RoundedButton) cancelPressLocked() {
	if b.pressTimer != nil {
		b.pressTimer.Stop()
		b.pressTimer = nil
	}
}

func (b *RoundedButton) setHovered(hovered bool) {
	b.mu.Lock()
	changed := b.hovered != hovered
	b.hovered = hovered
	b.mu.Unlock()
	if changed {
		b.Refresh()
	}
}

type roundedButtonRenderer struct {
	button  *RoundedButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *roundedButtonRenderer) Layout(size fyne.Size) {
	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)

	textHeight := r.label.MinSize().Height
	r.label.Move(fyne.NewPos(0, (size.Height-textHeight)/2))
	r.label.Resize(fyne.NewSize(size.Width, textHeight))
}

func (r *roundedButtonRenderer) MinSize() fyne.Size {
	r.button.mu.Lock()
	want := r.button.minSize
	r.button.mu.Unlock()

	pad := theme.Padding() * 4
	text := r.label.MinSize()
	return fyne.NewSize(fyne.Max(text.Width+pad, want.Width), fyne.Max(text.Height+pad/2, want.Height))
}

func (r *roundedButtonRenderer) Refresh() {
	b := r.button
	b.mu.Lock()
	fill, fg := b.fill, color.Color(textPrimary)
	switch {
	case b.disabled:
		fill, fg = bgHover, textMuted
	case b.hovered:
		fill = b.hover
	}
	r.label.Text = b.text
	r.label.TextSize = b.textSize
	b.mu.Unlock()

	r.bg.FillColor = fill
	r.label.Color = fg
	r.bg.Refresh()
	r.label.Refresh()
}

func (r *roundedButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *roundedButtonRenderer) Destroy() {}
