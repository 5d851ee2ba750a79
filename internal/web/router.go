package web

import (
	"net/http"

	"flaskr/internal/web/controller"
	"flaskr/internal/web/middleware"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", StaticFileServer()))

	guard := middleware.Auth(s.authService)

	authController := controller.Auth{AuthService: s.authService, Templates: s.templates}
	authController.Register(mux)

	entryController := controller.Entry{EntryRepo: s.entryRepo, Auth: s.authService, Templates: s.templates}
	entryController.Register(mux, guard)

	wikiController := controller.Wiki{WikiRepo: s.wikiRepo, Auth: s.authService, Templates: s.templates}
	wikiController.Register(mux, guard)

	return mux
}
