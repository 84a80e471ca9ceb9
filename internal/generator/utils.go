package generator

import (
	"io"
	"text/template"

	"github.com/rescom/rescom/internal/templates"
)

// executeTemplate loads a template by name, parses it with the provided
// funcMap, and executes it to w.
func executeTemplate(tmplName string, w io.Writer, data interface{}, funcMap template.FuncMap) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(tmplName).Funcs(funcMap).Parse(tmplContent)
	if err != nil {
		return err
	}

	return t.Execute(w, data)
}
