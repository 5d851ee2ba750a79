package viewmodels

import (
	"html/template"

	"flaskr/internal/models"
)

// PageData is a unified struct to hold all possible data for any page.
type PageData struct {
	Title      string
	IsLoggedIn bool
	Flashes    []string
	Error      string // login form error, if any
	Entries    []models.Entry
	Pages      []models.WikiPage
	Page       models.WikiPage // the wiki page being viewed or edited
	Content    template.HTML   // rendered wiki page content
}
