// Package notice decides what the user is told about an operation and renders
// it in their language. Rendering of the notice itself is left to the client.
package notice

import (
	"embed"
	"encoding/json"
	"errors"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notice struct {
	Level     Level  `json:"level"`
	MessageID string `json:"message_id"`
	Text      string `json:"text"`
}

type Translator struct {
	bundle *i18n.Bundle
}

func New() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, path := range []string{"locales/active.en.json", "locales/active.id.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, err
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Decide picks the message for a failed operation. Validation failures use their
// own code; remote failures use fallbackID, or the generic message for their kind
// when fallbackID is empty.
func Decide(err error, fallbackID string) (id string, data map[string]any) {
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		return ve.Code, map[string]any{"Field": ve.Field}
	}

	var re *apperror.RemoteError
	if errors.As(err, &re) {
		if re.Kind == apperror.KindConstraintViolation || fallbackID == "" {
			return "remote." + string(re.Kind), nil
		}
		return fallbackID, nil
	}

	if fallbackID != "" {
		return fallbackID, nil
	}
	return "remote.unknown", nil
}

func (t *Translator) Success(lang, id string, data map[string]any) Notice {
	return Notice{Level: LevelSuccess, MessageID: id, Text: t.Text(lang, id, data, id)}
}

func (t *Translator) Failure(lang string, err error, fallbackID string) Notice {
	id, data := Decide(err, fallbackID)
	fallback := id
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		fallback = ve.Message
	}
	return Notice{Level: LevelError, MessageID: id, Text: t.Text(lang, id, data, fallback)}
}

// Text localizes id for the accept-language value lang. Unknown ids render fallback.
func (t *Translator) Text(lang, id string, data map[string]any, fallback string) string {
	localizer := i18n.NewLocalizer(t.bundle, lang)
	text, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || text == "" {
		return fallback
	}
	return text
}
