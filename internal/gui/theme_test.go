package gui

import (
	"image/color"
	"testing"

	"morse-converter/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTheme_UsesPalette(t *testing.T) {
	th, err := NewTheme(config.DefaultTheme())
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0xE3, G: 0xF2, B: 0xFD, A: 0xff}, th.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xff}, th.Color(ColorNameAccent, theme.VariantLight))
	assert.Equal(t, color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xff}, th.Color(theme.ColorNameError, theme.VariantLight))
}

func TestNewTheme_FallsBackToDefault(t *testing.T) {
	th, err := NewTheme(config.DefaultTheme())
	require.NoError(t, err)

	want := theme.DefaultTheme().Color(theme.ColorNameShadow, theme.VariantLight)
	assert.Equal(t, want, th.Color(theme.ColorNameShadow, theme.VariantLight))
	assert.NotNil(t, th.Font(fyne.TextStyle{Monospace: true}))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))
}

func TestNewTheme_RejectsBadColour(t *testing.T) {
	cfg := config.DefaultTheme()
	cfg.Accent = "#12345"

	_, err := NewTheme(cfg)
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := parseHex("#010203")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, c)

	for _, bad := range []string{"", "010203", "#GGGGGG", "#0102030"} {
		_, err := parseHex(bad)
		assert.Error(t, err, "parseHex(%q)", bad)
	}
}
