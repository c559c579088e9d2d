package app

import (
	"sync"

	"morse-converter/internal/gui"
	"morse-converter/internal/logger"
)

type Lifecycle struct {
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		logger:     log,
	}
}

// Shutdown is safe to call from both the window close hook and the signal
// handler; only the first call does anything.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.isShutdown = true
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.guiManager != nil {
			l.guiManager.Shutdown()
			l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
