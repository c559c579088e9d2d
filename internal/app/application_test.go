package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morse-converter/internal/config"
	"morse-converter/internal/logger"
)

func TestNewWithApp_WiresWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)

	application, err := NewWithApp(fyneApp, config.DefaultConfig(), logger.NoOpLogger{})
	require.NoError(t, err)

	assert.Equal(t, AppName, application.window.Title())
	assert.Equal(t, "Ready", application.guiManager.Status())
}

func TestNewWithApp_RejectsBadTheme(t *testing.T) {
	fyneApp := test.NewTempApp(t)

	cfg := config.DefaultConfig()
	cfg.Theme.Background = "blue"

	_, err := NewWithApp(fyneApp, cfg, nil)
	assert.Error(t, err)
}

func TestApplication_ConvertThroughWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)

	application, err := NewWithApp(fyneApp, nil, nil)
	require.NoError(t, err)
	application.window.SetContent(application.guiManager.GetMainContainer())

	application.guiManager.SetInput("sos")
	application.handlers.HandleConvert()
	assert.Equal(t, "... --- ...", application.guiManager.OutputText())
	assert.Equal(t, "✓ Conversion successful", application.guiManager.Status())

	application.guiManager.SetInput("sos#")
	application.handlers.HandleConvert()
	assert.Equal(t, "... --- ...", application.guiManager.OutputText())
	assert.Equal(t, "Conversion failed", application.guiManager.Status())

	application.handlers.HandleClear()
	assert.Empty(t, application.guiManager.InputText())
	assert.Empty(t, application.guiManager.OutputText())
	assert.Equal(t, "Text cleared", application.guiManager.Status())
}

func TestLifecycle_ShutdownOnce(t *testing.T) {
	fyneApp := test.NewTempApp(t)

	application, err := NewWithApp(fyneApp, nil, nil)
	require.NoError(t, err)

	application.lifecycle.Shutdown()
	application.lifecycle.Shutdown()
	assert.True(t, application.lifecycle.IsShutdown())
}
