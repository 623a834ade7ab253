// Package i18n holds the storefront's English and Mongolian strings and the
// price and date formatting used by the views.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/iliyamo/progear-storefront/internal/model"
)

var tables = map[string]map[string]string{
	model.LangEnglish:   en,
	model.LangMongolian: mn,
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Mongolian})

// Match maps a language preference such as "mn-MN" or an Accept-Language
// header value onto a supported code. Anything unknown is English.
func Match(pref string) string {
	if _, ok := tables[pref]; ok {
		return pref
	}
	_, idx := language.MatchStrings(matcher, pref)
	if idx == 1 {
		return model.LangMongolian
	}
	return model.LangEnglish
}

// T looks key up in lang, then in English, and finally returns key itself.
func T(lang, key string) string {
	if s, ok := tables[Match(lang)][key]; ok && s != "" {
		return s
	}
	if s, ok := en[key]; ok && s != "" {
		return s
	}
	return key
}

// Translator binds T to one language for templates.
type Translator string

func (t Translator) T(key string) string { return T(string(t), key) }
