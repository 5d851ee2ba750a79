package controller

import (
	"database/sql"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"flaskr/internal/auth"
	"flaskr/internal/models"
	"flaskr/internal/web/renderer"
	"flaskr/internal/web/viewmodels"
	"flaskr/internal/wiki"
)

// Wiki provides wiki page handlers
type Wiki struct {
	WikiRepo  *wiki.Repository
	Auth      *auth.Service
	Templates map[string]*template.Template
}

// Register registers the wiki routes. Listing and viewing are public;
// everything else goes through the guard first.
func (c *Wiki) Register(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /wiki", c.list)
	mux.Handle("GET /wiki/create", guard(http.HandlerFunc(c.createForm)))
	mux.Handle("POST /wiki/create", guard(http.HandlerFunc(c.create)))
	mux.HandleFunc("GET /wiki/{id}", c.view)
	mux.Handle("GET /wiki/{id}/edit", guard(http.HandlerFunc(c.editForm)))
	mux.Handle("POST /wiki/{id}/edit", guard(http.HandlerFunc(c.edit)))
	mux.Handle("POST /wiki/{id}/delete", guard(http.HandlerFunc(c.delete)))
}

func (c *Wiki) list(w http.ResponseWriter, r *http.Request) {
	pages, err := c.WikiRepo.List()
	if err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	data := viewmodels.PageData{
		Title:      "Wiki Pages",
		IsLoggedIn: c.Auth.IsLoggedIn(r),
		Flashes:    c.Auth.Flashes(w, r),
		Pages:      pages,
	}
	render(w, c.Templates, "wiki_list.html", data)
}

func (c *Wiki) view(w http.ResponseWriter, r *http.Request) {
	page, ok := c.findPage(w, r)
	if !ok {
		return
	}

	content, err := renderer.Render(page.Content)
	if err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	data := viewmodels.PageData{
		Title:      page.Title,
		IsLoggedIn: c.Auth.IsLoggedIn(r),
		Flashes:    c.Auth.Flashes(w, r),
		Page:       page,
		Content:    content,
	}
	render(w, c.Templates, "wiki_view.html", data)
}

func (c *Wiki) createForm(w http.ResponseWriter, r *http.Request) {
	data := viewmodels.PageData{
		Title:      "Create New Wiki Page",
		IsLoggedIn: true,
		Flashes:    c.Auth.Flashes(w, r),
	}
	render(w, c.Templates, "wiki_create.html", data)
}

func (c *Wiki) create(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	content := r.FormValue("content")

	if _, err := c.WikiRepo.Create(title, content); err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	c.Auth.Flash(w, r, "New wiki page was successfully created")
	http.Redirect(w, r, "/wiki", http.StatusFound)
}

func (c *Wiki) editForm(w http.ResponseWriter, r *http.Request) {
	page, ok := c.findPage(w, r)
	if !ok {
		return
	}

	data := viewmodels.PageData{
		Title:      "Edit Wiki Page",
		IsLoggedIn: true,
		Flashes:    c.Auth.Flashes(w, r),
		Page:       page,
	}
	render(w, c.Templates, "wiki_edit.html", data)
}

func (c *Wiki) edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	if err := c.WikiRepo.Update(id, title, content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	c.Auth.Flash(w, r, "Wiki page was successfully updated")
	http.Redirect(w, r, "/wiki/"+strconv.Itoa(id), http.StatusFound)
}

func (c *Wiki) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Deleting an id that is already gone still reports success.
	if err := c.WikiRepo.Delete(id); err != nil {
		log.Println(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}

	c.Auth.Flash(w, r, "Wiki page was successfully deleted")
	http.Redirect(w, r, "/wiki", http.StatusFound)
}

// findPage resolves the {id} path value to a page, writing a 404 when
// the id is malformed or the page does not exist.
func (c *Wiki) findPage(w http.ResponseWriter, r *http.Request) (page models.WikiPage, ok bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return page, false
	}

	page, err = c.WikiRepo.Find(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
		} else {
			log.Println(err)
			http.Error(w, "Internal Server Error", 500)
		}
		return page, false
	}
	return page, true
}
