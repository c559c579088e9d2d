package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const bannerArt = `8b    d8  dP"Yb  88""Yb .dP"Y8 888888
88b  d88 dP   Yb 88__dP ` + "`" + `Ybo." 88__
88YbdP88 Yb   dP 88"Yb  o.` + "`" + `Y8b 88""
88 YY 88  YbodP  88  Yb 8bodP' 888888`

const Title = "Morse Code Converter"

// NewBanner returns the ASCII art header followed by the window title.
func NewBanner(accent fyne.ThemeColorName) *widget.RichText {
	return widget.NewRichText(
		&widget.TextSegment{
			Text: bannerArt,
			Style: widget.RichTextStyle{
				Alignment: fyne.TextAlignCenter,
				ColorName: accent,
				SizeName:  theme.SizeNameCaptionText,
				TextStyle: fyne.TextStyle{Monospace: true},
			},
		},
		&widget.TextSegment{
			Text: Title,
			Style: widget.RichTextStyle{
				Alignment: fyne.TextAlignCenter,
				ColorName: theme.ColorNameForeground,
				SizeName:  theme.SizeNameHeadingText,
				TextStyle: fyne.TextStyle{Bold: true},
			},
		},
	)
}
