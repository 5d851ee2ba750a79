package models

// Entry represents a single blog entry on the front page.
type Entry struct {
	ID    int
	Title string
	Text  string
}
