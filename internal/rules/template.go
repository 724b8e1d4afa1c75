package rules

import (
	"embed"
	"strings"

	"github.com/wangnov/shnote/internal/i18n"
)

//go:embed templates/*.md
var templates embed.FS

func mustRead(name string) string {
	data, err := templates.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// Render returns the rules document for lang. The pueue section is included
// only when withPueue is set, i.e. when pueue and pueued are available.
func Render(lang i18n.Lang, withPueue bool) string {
	if lang != i18n.Zh {
		lang = i18n.En
	}
	body := mustRead("base." + string(lang) + ".md")
	if withPueue {
		body = strings.TrimRight(body, "\n") + "\n" + mustRead("pueue."+string(lang)+".md")
	}
	return body
}

// Variant is one rendering of the rules template.
type Variant struct {
	Lang      i18n.Lang
	WithPueue bool
	Body      string
}

// Variants returns every rendering this binary can produce.
func Variants() []Variant {
	var out []Variant
	for _, lang := range []i18n.Lang{i18n.En, i18n.Zh} {
		for _, pueue := range []bool{true, false} {
			out = append(out, Variant{Lang: lang, WithPueue: pueue, Body: Render(lang, pueue)})
		}
	}
	return out
}
