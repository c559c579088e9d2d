package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TextArea is a titled, word-wrapping multi-line entry.
type TextArea struct {
	card  *widget.Card
	Entry *widget.Entry
}

func NewTextArea(title string, rows int, monospace bool) *TextArea {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetMinRowsVisible(rows)
	entry.TextStyle = fyne.TextStyle{Monospace: monospace}

	return &TextArea{
		card:  widget.NewCard(title, "", entry),
		Entry: entry,
	}
}

func (ta *TextArea) GetContainer() fyne.CanvasObject {
	return ta.card
}

func (ta *TextArea) Text() string {
	return ta.Entry.Text
}

func (ta *TextArea) SetText(text string) {
	ta.Entry.SetText(text)
}
