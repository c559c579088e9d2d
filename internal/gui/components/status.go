package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusKind selects the colour of the status text.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusFailure
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar(initial string) *StatusBar {
	statusLabel := widget.NewLabel(initial)

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		statusLabel,
		nil,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string, kind StatusKind) {
	switch kind {
	case StatusSuccess:
		sb.statusLabel.Importance = widget.SuccessImportance
	case StatusFailure:
		sb.statusLabel.Importance = widget.DangerImportance
	default:
		sb.statusLabel.Importance = widget.MediumImportance
	}
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}
