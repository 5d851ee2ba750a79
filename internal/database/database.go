package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func New(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema if it does not exist yet. Existing rows
// are left alone.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// Init drops both tables and recreates them from the schema,
// discarding any existing data. It backs the init-db admin command.
func Init(db *sql.DB) error {
	_, err := db.Exec(`
DROP TABLE IF EXISTS entries;
DROP TABLE IF EXISTS wiki_pages;
` + schema)
	return err
}

const schema = `
-- FLASKR Database Schema

-- Entries are the blog posts shown on the front page.
CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    text TEXT NOT NULL
);

-- Wiki pages are standalone documents with server-assigned timestamps.
CREATE TABLE IF NOT EXISTS wiki_pages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created TIMESTAMP NOT NULL,
    updated TIMESTAMP NOT NULL
);
`
