package wiki

import (
	"database/sql"
	"fmt"
	"time"

	"flaskr/internal/models"
)

// Repository provides access to the wiki page storage.
type Repository struct {
	DB *sql.DB
}

// NewRepository creates a new wiki page repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// List lists all wiki pages, newest first.
func (r *Repository) List() ([]models.WikiPage, error) {
	rows, err := r.DB.Query("SELECT id, title, content, created, updated FROM wiki_pages ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.WikiPage
	for rows.Next() {
		var page models.WikiPage
		if err := rows.Scan(&page.ID, &page.Title, &page.Content, &page.Created, &page.Updated); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// Find finds a wiki page by its id. A missing id reports sql.ErrNoRows.
func (r *Repository) Find(id int) (models.WikiPage, error) {
	var page models.WikiPage
	err := r.DB.QueryRow("SELECT id, title, content, created, updated FROM wiki_pages WHERE id = ?", id).
		Scan(&page.ID, &page.Title, &page.Content, &page.Created, &page.Updated)
	if err != nil {
		return models.WikiPage{}, err
	}
	return page, nil
}

// Create inserts a new wiki page with created and updated both set to
// the current time.
func (r *Repository) Create(title, content string) (models.WikiPage, error) {
	now := time.Now()
	res, err := r.DB.Exec("INSERT INTO wiki_pages (title, content, created, updated) VALUES (?, ?, ?, ?)",
		title, content, now, now)
	if err != nil {
		return models.WikiPage{}, fmt.Errorf("error creating wiki page: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.WikiPage{}, fmt.Errorf("error reading wiki page id: %w", err)
	}

	return models.WikiPage{ID: int(id), Title: title, Content: content, Created: now, Updated: now}, nil
}

// Update rewrites a page's title and content and advances its updated
// timestamp. The created timestamp is left untouched.
func (r *Repository) Update(id int, title, content string) error {
	res, err := r.DB.Exec("UPDATE wiki_pages SET title = ?, content = ?, updated = ? WHERE id = ?",
		title, content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating wiki page: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating wiki page: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the page with the given id. Deleting an id that does
// not exist is not an error.
func (r *Repository) Delete(id int) error {
	_, err := r.DB.Exec("DELETE FROM wiki_pages WHERE id = ?", id)
	return err
}
