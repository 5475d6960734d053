package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies one of the two languages the site is written in.
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// Langs lists the supported languages in display order.
var Langs = []Lang{LangZH, LangEN}

// NormalizeLang maps a free-form language tag ("zh-CN", "en_US", "EN") to a
// supported Lang. It returns "" when the input names neither language.
func NormalizeLang(s string) Lang {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return LangZH
	case "en":
		return LangEN
	}
	return ""
}

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == LangZH || l == LangEN
}

// Other returns the opposite language.
func (l Lang) Other() Lang {
	if l == LangEN {
		return LangZH
	}
	return LangEN
}

// HTMLLang returns the value for the document's lang attribute.
func (l Lang) HTMLLang() string {
	if l == LangEN {
		return "en"
	}
	return "zh-CN"
}
