// Package i18n selects the message language and holds the en/zh message catalog.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported message language.
type Lang string

const (
	En Lang = "en"
	Zh Lang = "zh"
)

// LangAuto defers language selection to the environment.
const LangAuto = "auto"

// EnvLang is the shnote-specific locale override.
const EnvLang = "SHNOTE_LANG"

// localeEnv lists the locale variables consulted after SHNOTE_LANG, in priority order.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"}

// ParseLang maps a locale or language tag such as "zh_CN.UTF-8", "en-US" or "zh"
// to a supported Lang. It reports false for empty, C/POSIX and unsupported values.
func ParseLang(raw string) (Lang, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	switch strings.ToLower(s) {
	case "", "c", "posix", LangAuto:
		return "", false
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		return Zh, true
	case "en":
		return En, true
	}
	return "", false
}

// Detect resolves the message language. The explicit flag value wins, then the
// configured language (unless "auto"), then SHNOTE_LANG, LC_ALL, LC_MESSAGES,
// LANGUAGE (first entry) and LANG. When none of those names a language, system
// is asked for the OS locale; nil skips that step. English is the fallback.
func Detect(flag, configured string, getenv func(string) string, system func() string) Lang {
	if l, ok := ParseLang(flag); ok {
		return l
	}
	if l, ok := ParseLang(configured); ok {
		return l
	}
	if getenv != nil {
		if l, ok := ParseLang(getenv(EnvLang)); ok {
			return l
		}
		for _, name := range localeEnv {
			v := getenv(name)
			if name == "LANGUAGE" {
				v, _, _ = strings.Cut(v, ":")
			}
			if l, ok := ParseLang(v); ok {
				return l
			}
		}
	}
	if system != nil {
		if l, ok := ParseLang(system()); ok {
			return l
		}
	}
	return En
}

// Catalog renders localized messages for one language.
type Catalog struct {
	lang Lang
}

// New returns a catalog for lang. Unknown languages fall back to English.
func New(lang Lang) *Catalog {
	if lang != Zh {
		lang = En
	}
	return &Catalog{lang: lang}
}

// Lang returns the catalog language.
func (c *Catalog) Lang() Lang {
	if c == nil {
		return En
	}
	return c.lang
}

// T formats the message for key with args. Missing translations fall back to
// English, and an unknown key renders as the key itself.
func (c *Catalog) T(key Key, args ...any) string {
	entry, ok := messages[key]
	if !ok {
		return string(key)
	}
	tmpl := entry.en
	if c.Lang() == Zh && entry.zh != "" {
		tmpl = entry.zh
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
