package i18n

import (
	"embed"
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"morse-converter/internal/logger"
	"morse-converter/internal/morse"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message IDs in the embedded catalog.
const (
	StatusReady               = "StatusReady"
	StatusConverted           = "StatusConverted"
	StatusCleared             = "StatusCleared"
	StatusFailed              = "StatusFailed"
	ErrorTitle                = "ErrorTitle"
	ErrorEmptyInput           = "ErrorEmptyInput"
	ErrorUnsupportedCharacter = "ErrorUnsupportedCharacter"
	ErrorConversion           = "ErrorConversion"
)

// Translator renders user-facing text from the embedded catalog.
type Translator struct {
	localizer *i18n.Localizer
	logger    logger.Logger
}

// NewTranslator loads the catalog and resolves messages for locale, falling
// back to English.
func NewTranslator(locale string, log logger.Logger) *Translator {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := localeFS.ReadDir(".")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file.Name()); err != nil {
			log.Warning("I18n", "failed to load message file", map[string]interface{}{
				"file":  file.Name(),
				"error": err.Error(),
			})
		}
	}

	if _, err := language.Parse(locale); err != nil {
		log.Warning("I18n", "invalid locale, using English", map[string]interface{}{
			"locale": locale,
		})
		locale = language.English.String()
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, locale, language.English.String()),
		logger:    log,
	}
}

// T renders key. It returns the key itself when no message exists.
func (t *Translator) T(key string, data map[string]interface{}) string {
	return t.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// ErrorMessage turns a conversion failure into text for the user.
func (t *Translator) ErrorMessage(err error) string {
	var convErr *morse.ConversionError
	if !errors.As(err, &convErr) {
		return t.T(ErrorConversion, map[string]interface{}{"Error": err.Error()})
	}

	switch convErr.Reason {
	case morse.ReasonEmptyInput:
		return t.T(ErrorEmptyInput, nil)
	case morse.ReasonUnsupportedCharacter:
		return t.localize(&i18n.LocalizeConfig{
			MessageID:   ErrorUnsupportedCharacter,
			PluralCount: len(convErr.Characters),
			TemplateData: map[string]interface{}{
				"Characters": morse.QuoteCharacters(convErr.Characters),
			},
		})
	default:
		return t.T(ErrorConversion, map[string]interface{}{"Error": err.Error()})
	}
}

func (t *Translator) localize(cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		t.logger.Warning("I18n", "localize failed", map[string]interface{}{
			"key":   cfg.MessageID,
			"error": err.Error(),
		})
		return cfg.MessageID
	}
	return msg
}
