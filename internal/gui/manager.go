package gui

import (
	"errors"

	"morse-converter/internal/gui/components"
	"morse-converter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
)

// Options carries everything the window needs. Nothing is read from
// package state.
type Options struct {
	Theme       *Theme
	ReadyStatus string
	ErrorTitle  string
}

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	errorTitle string
	isShutdown bool

	banner    fyne.CanvasObject
	input     *components.TextArea
	output    *components.TextArea
	controls  *components.ControlsPanel
	statusBar *components.StatusBar
	content   *fyne.Container
}

func NewManager(window fyne.Window, log logger.Logger, opts Options) (*Manager, error) {
	if window == nil {
		return nil, errors.New("gui: window is required")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	accent := ColorNameAccent
	if opts.Theme == nil {
		accent = theme.ColorNamePrimary
	}

	manager := &Manager{
		window:     window,
		logger:     log,
		errorTitle: opts.ErrorTitle,
		banner:     components.NewBanner(accent),
		input:      components.NewTextArea("Input Text", 5, false),
		output:     components.NewTextArea("Morse Code Output", 10, true),
		controls:   components.NewControlsPanel(),
		statusBar:  components.NewStatusBar(opts.ReadyStatus),
	}

	if opts.Theme != nil {
		fyne.CurrentApp().Settings().SetTheme(opts.Theme)
	}

	manager.content = container.NewBorder(
		container.NewVBox(
			manager.banner,
			manager.input.GetContainer(),
			manager.controls.GetContainer(),
		),
		manager.statusBar.GetContainer(),
		nil, nil,
		manager.output.GetContainer(),
	)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"themed": opts.Theme != nil,
	})

	return manager, nil
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetConvertHandler(handler func()) {
	m.controls.SetConvertHandler(func() {
		m.logger.Debug("GUIManager", "conversion requested", nil)
		handler()
	})
}

func (m *Manager) SetClearHandler(handler func()) {
	m.controls.SetClearHandler(func() {
		m.logger.Debug("GUIManager", "clear requested", nil)
		handler()
	})
}

func (m *Manager) InputText() string {
	return m.input.Text()
}

func (m *Manager) SetInput(text string) {
	m.input.SetText(text)
}

func (m *Manager) OutputText() string {
	return m.output.Text()
}

func (m *Manager) SetOutput(text string) {
	m.output.SetText(text)
}

func (m *Manager) ClearAll() {
	m.input.SetText("")
	m.output.SetText("")
}

func (m *Manager) Status() string {
	return m.statusBar.Status()
}

func (m *Manager) UpdateStatus(status string) {
	m.setStatus(status, components.StatusInfo)
}

func (m *Manager) ShowSuccess(status string) {
	m.setStatus(status, components.StatusSuccess)
}

func (m *Manager) ShowFailure(status string) {
	m.setStatus(status, components.StatusFailure)
}

func (m *Manager) setStatus(status string, kind components.StatusKind) {
	m.statusBar.SetStatus(status, kind)
	m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

// ShowError opens an error dialog with message.
func (m *Manager) ShowError(message string) {
	title := m.errorTitle
	if title == "" {
		title = "Error"
	}
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
