package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
)

// clockSVG draws a ring with the hour hand at 12 and the minute hand at 3.
const clockSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="80" height="80" viewBox="0 0 80 80">
<circle cx="40" cy="40" r="36" fill="none" stroke="%[1]s" stroke-width="3"/>
<line x1="40" y1="40" x2="40" y2="22" stroke="%[1]s" stroke-width="3" stroke-linecap="round"/>
<line x1="40" y1="40" x2="52.6" y2="40" stroke="%[1]s" stroke-width="3" stroke-linecap="round"/>
</svg>`

// ClockIcon returns the clock drawn in c as an SVG resource.
func ClockIcon(c color.Color) fyne.Resource {
	hex := hexColor(c)
	return fyne.NewStaticResource("clock-"+hex[1:]+".svg", []byte(fmt.Sprintf(clockSVG, hex)))
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
