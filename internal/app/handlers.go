package app

import (
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"morse-converter/internal/i18n"
	"morse-converter/internal/logger"
	"morse-converter/internal/morse"
)

// View is the part of the window the handlers drive.
type View interface {
	InputText() string
	SetOutput(text string)
	ClearAll()
	UpdateStatus(status string)
	ShowSuccess(status string)
	ShowFailure(status string)
	ShowError(message string)
}

type Handlers struct {
	view       View
	translator *i18n.Translator
	logger     logger.Logger
}

func NewHandlers(view View, tr *i18n.Translator, log logger.Logger) *Handlers {
	return &Handlers{
		view:       view,
		translator: tr,
		logger:     log,
	}
}

// HandleConvert validates the input field and writes its Morse code to the
// output field. On failure the previous output is left untouched.
func (h *Handlers) HandleConvert() {
	id := ulid.Make().String()

	// The input field is stripped as a whole; Validate itself never trims.
	raw := strings.TrimSpace(h.view.InputText())

	text, err := morse.Validate(raw)
	if err != nil {
		h.fail(id, err)
		return
	}

	code, err := morse.Translate(text)
	if err != nil {
		h.fail(id, err)
		return
	}

	h.view.SetOutput(code)
	h.view.ShowSuccess(h.translator.T(i18n.StatusConverted, nil))

	h.logger.Info("Handlers", "conversion succeeded", map[string]interface{}{
		"conversion_id": id,
		"input_chars":   utf8.RuneCountInString(text),
		"output_chars":  utf8.RuneCountInString(code),
	})
}

func (h *Handlers) HandleClear() {
	h.view.ClearAll()
	h.view.UpdateStatus(h.translator.T(i18n.StatusCleared, nil))
	h.logger.Debug("Handlers", "fields cleared", nil)
}

func (h *Handlers) fail(id string, err error) {
	fields := map[string]interface{}{
		"conversion_id": id,
		"error":         err.Error(),
	}
	if reason, ok := morse.ReasonOf(err); ok {
		fields["reason"] = string(reason)
	}
	h.logger.Warning("Handlers", "conversion rejected", fields)

	h.view.ShowError(h.translator.ErrorMessage(err))
	h.view.ShowFailure(h.translator.T(i18n.StatusFailed, nil))
}
