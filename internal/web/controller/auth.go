package controller

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"flaskr/internal/auth"
	"flaskr/internal/web/viewmodels"
)

// Auth provides login and logout handlers
type Auth struct {
	AuthService *auth.Service
	Templates   map[string]*template.Template
}

// Register registers the auth routes
func (a *Auth) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /login", a.loginGet)
	mux.HandleFunc("POST /login", a.loginPost)
	mux.HandleFunc("GET /logout", a.logout)
}

func (a *Auth) loginGet(w http.ResponseWriter, r *http.Request) {
	data := viewmodels.PageData{
		Title:      "Login",
		IsLoggedIn: a.AuthService.IsLoggedIn(r),
		Flashes:    a.AuthService.Flashes(w, r),
	}
	render(w, a.Templates, "login.html", data)
}

func (a *Auth) loginPost(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	err := a.AuthService.Login(w, r, username, password)
	if err != nil {
		data := viewmodels.PageData{Title: "Login"}
		switch {
		case errors.Is(err, auth.ErrInvalidUsername):
			data.Error = "Invalid username"
		case errors.Is(err, auth.ErrInvalidPassword):
			data.Error = "Invalid password"
		default:
			log.Println(err)
			http.Error(w, "Internal Server Error", 500)
			return
		}
		render(w, a.Templates, "login.html", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *Auth) logout(w http.ResponseWriter, r *http.Request) {
	a.AuthService.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}
