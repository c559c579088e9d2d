package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type ControlsPanel struct {
	container     *fyne.Container
	ConvertButton *widget.Button
	ClearButton   *widget.Button

	convertHandler func()
	clearHandler   func()
}

func NewControlsPanel() *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	cp.ConvertButton = widget.NewButton("Convert to Morse Code", cp.onConvert)
	cp.ConvertButton.Importance = widget.HighImportance

	cp.ClearButton = widget.NewButton("Clear All", cp.onClear)
	cp.ClearButton.Importance = widget.HighImportance

	cp.container = container.NewHBox(
		cp.ConvertButton,
		cp.ClearButton,
	)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *ControlsPanel) SetConvertHandler(handler func()) {
	cp.convertHandler = handler
}

func (cp *ControlsPanel) SetClearHandler(handler func()) {
	cp.clearHandler = handler
}

func (cp *ControlsPanel) onConvert() {
	if cp.convertHandler != nil {
		cp.convertHandler()
	}
}

func (cp *ControlsPanel) onClear() {
	if cp.clearHandler != nil {
		cp.clearHandler()
	}
}
