package app

import (
	"fmt"

	"morse-converter/internal/config"
	"morse-converter/internal/gui"
	"morse-converter/internal/i18n"
	"morse-converter/internal/logger"
	"morse-converter/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Text to Morse Code Converter"
	AppID      = "com.morseconverter.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	handlers   *Handlers
	translator *i18n.Translator
	logger     logger.Logger
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return NewWithApp(app.NewWithID(AppID), cfg, log)
}

// NewWithApp builds the application on an existing Fyne app, which lets
// tests supply the headless driver.
func NewWithApp(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	th, err := gui.NewTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()
	window.SetMaster()

	translator := i18n.NewTranslator(cfg.Locale, log)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"locale":        cfg.Locale,
	})

	guiManager, err := gui.NewManager(window, log, gui.Options{
		Theme:       th,
		ReadyStatus: translator.T(i18n.StatusReady, nil),
		ErrorTitle:  translator.T(i18n.ErrorTitle, nil),
	})
	if err != nil {
		return nil, err
	}

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		translator: translator,
		logger:     log,
		lifecycle:  NewLifecycle(guiManager, log),
		shutdown:   shutdown.NewManager(log),
	}

	application.setupHandlers()
	application.shutdown.Register(application.lifecycle)
	application.shutdown.Register(shutdown.Func(application.quit))

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.guiManager, a.translator, a.logger)

	a.guiManager.SetConvertHandler(a.handlers.HandleConvert)
	a.guiManager.SetClearHandler(a.handlers.HandleClear)
}

// Run shows the window and blocks until the app quits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Stop()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) quit() {
	fyne.Do(a.fyneApp.Quit)
}
