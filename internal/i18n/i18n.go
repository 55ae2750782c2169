// Package i18n holds the designer's message catalogs
package i18n

import (
	"golang.org/x/text/language"
)

const (
	KeySaveSuccess             = "notification.success.submit"
	KeyGenericError            = "notification.error"
	KeyReferenceIDNotEmpty     = "notification.templateReferenceIdNotEmpty"
	KeyReferenceIDTaken        = "notification.templateReferenceIdTaken"
	KeyUnsavedPrompt           = "prompt.unsaved"
	KeyNoName                  = "noName"
	KeyCoreEmailTypeLabel      = "coreEmailTypeLabel"
	KeyUserAddressConfirmation = "user-address-confirmation"
	KeyResetPassword           = "reset-password"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeySaveSuccess:             "Template saved",
		KeyGenericError:            "An error occurred, please try again",
		KeyReferenceIDNotEmpty:     "The template reference id can't be empty",
		KeyReferenceIDTaken:        "Another template already uses this reference id",
		KeyUnsavedPrompt:           "You have unsaved changes, are you sure you want to leave?",
		KeyNoName:                  "No name",
		KeyCoreEmailTypeLabel:      "Core email",
		KeyUserAddressConfirmation: "Address confirmation",
		KeyResetPassword:           "Reset password",
	},
	language.French: {
		KeySaveSuccess:             "Modèle enregistré",
		KeyGenericError:            "Une erreur est survenue, veuillez réessayer",
		KeyReferenceIDNotEmpty:     "L'identifiant de référence du modèle ne peut pas être vide",
		KeyReferenceIDTaken:        "Un autre modèle utilise déjà cet identifiant de référence",
		KeyUnsavedPrompt:           "Vous avez des modifications non enregistrées, voulez-vous vraiment quitter ?",
		KeyNoName:                  "Sans nom",
		KeyCoreEmailTypeLabel:      "Email système",
		KeyUserAddressConfirmation: "Confirmation d'adresse",
		KeyResetPassword:           "Réinitialisation du mot de passe",
	},
}

// supported is ordered; the first entry is the fallback
var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Translator resolves keys for one locale, falling back to English and then
// to the key itself
type Translator struct {
	tag      language.Tag
	messages map[string]string
}

// New returns a translator for a BCP 47 locale such as "fr" or "fr-CA"
func New(locale string) *Translator {
	tag := Match(locale)
	return &Translator{tag: tag, messages: catalogs[tag]}
}

// Match picks the closest supported language for locale
func Match(locale string) language.Tag {
	_, index, _ := matcher.Match(language.Make(locale))
	return supported[index]
}

// Locale returns the matched language, e.g. "fr"
func (t *Translator) Locale() string {
	return t.tag.String()
}

func (t *Translator) T(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := catalogs[language.English][key]; ok {
		return msg
	}
	return key
}

// Keys lists every key of the fallback catalog
func Keys() []string {
	keys := make([]string, 0, len(catalogs[language.English]))
	for k := range catalogs[language.English] {
		keys = append(keys, k)
	}
	return keys
}
