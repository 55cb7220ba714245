package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	bgPrimary   = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	bgSecondary = color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	bgTertiary  = color.NRGBA{R: 0x3d, G: 0x3d, B: 0x3d, A: 0xff}
	bgHover     = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}

	accentWarm      = color.NRGBA{R: 0xd9, G: 0x77, B: 0x57, A: 0xff}
	accentWarmHover = color.NRGBA{R: 0xe0, G: 0x8a, B: 0x6d, A: 0xff}
	accentCool      = color.NRGBA{R: 0x6b, G: 0x9f, B: 0xbe, A: 0xff}
	accentCoolHover = color.NRGBA{R: 0x7d, G: 0xb0, B: 0xcf, A: 0xff}

	textPrimary   = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	textSecondary = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	textMuted     = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

	successColor = color.NRGBA{R: 0x6b, G: 0xbd, B: 0x6b, A: 0xff}
	warningColor = color.NRGBA{R: 0xe0, G: 0xa4, B: 0x58, A: 0xff}
	dangerColor  = color.NRGBA{R: 0xcf, G: 0x66, B: 0x79, A: 0xff}
	dangerHover  = color.NRGBA{R: 0xd9, G: 0x8a, B: 0x99, A: 0xff}

	borderColor  = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	snackbarBg   = color.NRGBA{R: 0x38, G: 0x38, B: 0x38, A: 0xff}
	shadowColor  = color.NRGBA{A: 0x66}
	focusOutline = color.NRGBA{R: 0xd9, G: 0x77, B: 0x57, A: 0x7f}
)

const (
	textSizeTitle   = 20
	textSizeHeading = 32
	textSizeTimer   = 48
	textSizeLarge   = 14
	cornerRadius    = 12
)

// darkTheme is a fixed dark palette; the system variant is ignored.
type darkTheme struct{}

var _ fyne.Theme = (*darkTheme)(nil)

func (darkTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return bgPrimary
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return bgTertiary
	case theme.ColorNameDisabledButton:
		return bgHover
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return bgSecondary
	case theme.ColorNameHover, theme.ColorNamePressed:
		return bgHover
	case theme.ColorNameForeground:
		return textPrimary
	case theme.ColorNamePlaceHolder:
		return textSecondary
	case theme.ColorNameDisabled:
		return textMuted
	case theme.ColorNamePrimary:
		return accentWarm
	case theme.ColorNameFocus:
		return focusOutline
	case theme.ColorNameSelection:
		return accentCool
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return borderColor
	case theme.ColorNameShadow:
		return shadowColor
	case theme.ColorNameSuccess:
		return successColor
	case theme.ColorNameWarning:
		return warningColor
	case theme.ColorNameError:
		return dangerColor
	}
	return theme.DefaultTheme().Color(n, theme.VariantDark)
}

func (darkTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (darkTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (darkTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameText {
		return 12
	}
	return theme.DefaultTheme().Size(n)
}
