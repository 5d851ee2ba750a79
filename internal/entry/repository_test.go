package entry

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"flaskr/internal/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "flaskr.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Init(db); err != nil {
		t.Fatalf("init database: %v", err)
	}
	return NewRepository(db)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.Create("first", "first text")
	if err != nil {
		t.Fatalf("create first entry: %v", err)
	}
	second, err := repo.Create("second", "second text")
	if err != nil {
		t.Fatalf("create second entry: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both got %d", first.ID)
	}
}

func TestListIncludesCreatedEntry(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create("Hello", "This is a test entry.")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}

	found := false
	for _, entry := range entries {
		if entry.ID == created.ID && entry.Title == "Hello" && entry.Text == "This is a test entry." {
			found = true
		}
	}
	if !found {
		t.Fatalf("created entry not in list: %+v", entries)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create("doomed", "to be deleted")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	_, err = repo.Find(created.ID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestDeleteMissingIDIsNoop(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.Delete(12345); err != nil {
		t.Fatalf("deleting a missing id should succeed, got %v", err)
	}
}
