package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates
var templateFiles embed.FS

// ParseTemplates builds a map of isolated template sets, one per page,
// each paired with the shared layout.
func ParseTemplates() (map[string]*template.Template, error) {
	pages := []string{
		"entries.html",
		"login.html",
		"wiki_list.html",
		"wiki_view.html",
		"wiki_create.html",
		"wiki_edit.html",
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		ts, err := template.ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		templates[page] = ts
	}
	return templates, nil
}
