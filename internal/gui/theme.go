package gui

import (
	"fmt"
	"image/color"
	"strconv"

	"morse-converter/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameAccent colours the banner and focus highlights.
const ColorNameAccent fyne.ThemeColorName = "morseAccent"

// Theme is a fixed palette over the default Fyne theme. It ignores the
// light/dark variant.
type Theme struct {
	colors map[fyne.ThemeColorName]color.Color
}

var _ fyne.Theme = (*Theme)(nil)

func NewTheme(cfg config.ThemeConfig) (*Theme, error) {
	palette := map[fyne.ThemeColorName]string{
		theme.ColorNameBackground:          cfg.Background,
		theme.ColorNameForeground:          cfg.Foreground,
		theme.ColorNamePrimary:             cfg.Button,
		theme.ColorNameForegroundOnPrimary: cfg.ButtonText,
		theme.ColorNameButton:              cfg.Button,
		theme.ColorNameHover:               cfg.Accent,
		theme.ColorNameFocus:               cfg.Accent,
		theme.ColorNameSuccess:             cfg.Success,
		theme.ColorNameError:               cfg.Error,
		theme.ColorNameInputBackground:     cfg.InputField,
		ColorNameAccent:                    cfg.Accent,
	}

	colors := make(map[fyne.ThemeColorName]color.Color, len(palette))
	for name, hex := range palette {
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme colour %s: %w", name, err)
		}
		colors[name] = c
	}

	return &Theme{colors: colors}, nil
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func parseHex(hex string) (color.NRGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", hex)
	}

	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", hex)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
