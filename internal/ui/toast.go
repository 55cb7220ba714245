package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	toastDuration = 2500 * time.Millisecond
	toastMargin   = 60
)

// ShowToast shows message near the bottom of c and hides it after a
// short delay.
func ShowToast(c fyne.Canvas, message string) *widget.PopUp {
	return showToast(c, message, toastDuration)
}

func showToast(c fyne.Canvas, message string, d time.Duration) *widget.PopUp {
	bg := canvas.NewRectangle(snackbarBg)
	bg.StrokeColor = borderColor
	bg.StrokeWidth = 1
	bg.CornerRadius = 4

	text := canvas.NewText(message, textPrimary)
	text.Alignment = fyne.TextAlignCenter

	pop := widget.NewPopUp(container.NewStack(bg, container.NewPadded(container.NewPadded(text))), c)

	size := pop.MinSize()
	area := c.Size()
	x := fyne.Max((area.Width-size.Width)/2, 0)
	y := fyne.Max(area.Height-size.Height-toastMargin, 0)
	pop.ShowAtPosition(fyne.NewPos(x, y))

	time.AfterFunc(d, pop.Hide)
	return pop
}
