package controller

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"flaskr/internal/auth"
	"flaskr/internal/entry"
	"flaskr/internal/web/viewmodels"
)

// Entry provides entry handlers
type Entry struct {
	EntryRepo *entry.Repository
	Auth      *auth.Service
	Templates map[string]*template.Template
}

// Register registers the entry routes. Mutating routes go through the
// guard before any repository work.
func (c *Entry) Register(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /{$}", c.list)
	mux.Handle("POST /add", guard(http.HandlerFunc(c.add)))
	mux.Handle("POST /delete/{id}", guard(http.HandlerFunc(c.delete)))
}

func (c *Entry) list(w http.ResponseWriter, r *http.Request) {
	entries, err := c.EntryRepo.List()
	if err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	data := viewmodels.PageData{
		Title:      "Flaskr",
		IsLoggedIn: c.Auth.IsLoggedIn(r),
		Flashes:    c.Auth.Flashes(w, r),
		Entries:    entries,
	}
	render(w, c.Templates, "entries.html", data)
}

func (c *Entry) add(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	text := r.FormValue("text")

	if _, err := c.EntryRepo.Create(title, text); err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	c.Auth.Flash(w, r, "New entry was successfully posted")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (c *Entry) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Deleting an id that is already gone still reports success.
	if err := c.EntryRepo.Delete(id); err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	c.Auth.Flash(w, r, "Entry was successfully deleted")
	http.Redirect(w, r, "/", http.StatusFound)
}
