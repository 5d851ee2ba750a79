package models

import "time"

// WikiPage represents a titled content document with creation and
// update timestamps.
type WikiPage struct {
	ID      int
	Title   string
	Content string
	Created time.Time
	Updated time.Time
}
