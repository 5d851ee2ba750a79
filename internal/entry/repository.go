package entry

import (
	"database/sql"
	"fmt"

	"flaskr/internal/models"
)

// Repository provides access to the entry storage.
type Repository struct {
	DB *sql.DB
}

// NewRepository creates a new entry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// List lists all entries, newest first.
func (r *Repository) List() ([]models.Entry, error) {
	rows, err := r.DB.Query("SELECT id, title, text FROM entries ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Text); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Find finds an entry by its id.
func (r *Repository) Find(id int) (models.Entry, error) {
	var entry models.Entry
	err := r.DB.QueryRow("SELECT id, title, text FROM entries WHERE id = ?", id).Scan(&entry.ID, &entry.Title, &entry.Text)
	if err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// Create inserts a new entry and returns it with its assigned id.
func (r *Repository) Create(title, text string) (models.Entry, error) {
	res, err := r.DB.Exec("INSERT INTO entries (title, text) VALUES (?, ?)", title, text)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error creating entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Entry{}, fmt.Errorf("error reading entry id: %w", err)
	}

	return models.Entry{ID: int(id), Title: title, Text: text}, nil
}

// Delete removes the entry with the given id. Deleting an id that does
// not exist is not an error.
func (r *Repository) Delete(id int) error {
	_, err := r.DB.Exec("DELETE FROM entries WHERE id = ?", id)
	return err
}
