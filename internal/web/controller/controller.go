package controller

import (
	"html/template"
	"log"
	"net/http"

	"flaskr/internal/web/viewmodels"
)

func render(w http.ResponseWriter, templates map[string]*template.Template, name string, data viewmodels.PageData) {
	ts, ok := templates[name]
	if !ok {
		log.Printf("template %s does not exist", name)
		http.Error(w, "Internal Server Error", 500)
		return
	}
	if err := ts.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Println(err)
		if w.Header().Get("Content-Type") == "" {
			http.Error(w, "Internal Server Error", 500)
		}
	}
}
