package gui

import (
	"testing"

	"morse-converter/internal/config"
	"morse-converter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	test.NewTempApp(t)

	th, err := NewTheme(config.DefaultTheme())
	require.NoError(t, err)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	m, err := NewManager(window, logger.NoOpLogger{}, Options{
		Theme:       th,
		ReadyStatus: "Ready",
		ErrorTitle:  "Error",
	})
	require.NoError(t, err)
	window.SetContent(m.GetMainContainer())
	return m
}

func TestNewManager_RequiresWindow(t *testing.T) {
	_, err := NewManager(nil, nil, Options{})
	assert.Error(t, err)
}

func TestManager_InitialState(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, "Ready", m.Status())
	assert.Empty(t, m.InputText())
	assert.Empty(t, m.OutputText())
	assert.IsType(t, &Theme{}, fyne.CurrentApp().Settings().Theme())
}

func TestManager_ButtonsReachHandlers(t *testing.T) {
	m := newTestManager(t)

	var converted, cleared bool
	m.SetConvertHandler(func() { converted = true })
	m.SetClearHandler(func() { cleared = true })

	test.Tap(m.controls.ConvertButton)
	test.Tap(m.controls.ClearButton)

	assert.True(t, converted)
	assert.True(t, cleared)
}

func TestManager_TextAndStatus(t *testing.T) {
	m := newTestManager(t)

	test.Type(m.input.Entry, "sos")
	assert.Equal(t, "sos", m.InputText())

	m.SetOutput("... --- ...")
	m.ShowSuccess("done")
	assert.Equal(t, "... --- ...", m.OutputText())
	assert.Equal(t, "done", m.Status())

	m.ClearAll()
	assert.Empty(t, m.InputText())
	assert.Empty(t, m.OutputText())
}

func TestManager_ShutdownIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	m.Shutdown()
	m.Shutdown()
	assert.True(t, m.isShutdown)
}
