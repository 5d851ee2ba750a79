package web

import (
	"database/sql"
	"html/template"
	"net/http"

	"flaskr/internal/auth"
	"flaskr/internal/entry"
	"flaskr/internal/wiki"
)

// Server holds the dependencies for the web server.
type Server struct {
	db          *sql.DB
	templates   map[string]*template.Template
	authService *auth.Service
	entryRepo   *entry.Repository
	wikiRepo    *wiki.Repository
}

// NewServer creates a new server with the given dependencies.
func NewServer(db *sql.DB, authService *auth.Service, templates map[string]*template.Template) *Server {
	return &Server{
		db:          db,
		templates:   templates,
		authService: authService,
		entryRepo:   entry.NewRepository(db),
		wikiRepo:    wiki.NewRepository(db),
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}
