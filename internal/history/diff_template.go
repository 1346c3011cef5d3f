package history

import (
	_ "embed"
	"text/template"

	"github.com/masterminds/sprig"
)

//go:embed diff.md.template
var defaultDiffTemplate string

func DefaultDiffTemplate() string {
	return defaultDiffTemplate
}

func DefaultTemplateFuncs(t *template.Template) *template.Template {
	return t.Funcs(sprig.TxtFuncMap())
}
