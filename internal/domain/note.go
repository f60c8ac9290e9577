package domain

import (
	"fmt"
	"time"
)

// Note is a user-authored text record. Tags holds the names of attached
// tags; the set is unordered and deduplicated at the store level.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields a client is allowed to set at creation.
func (n *Note) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// HasTag reports whether the note already carries the given tag name.
func (n *Note) HasTag(name string) bool {
	for _, t := range n.Tags {
		if t == name {
			return true
		}
	}
	return false
}
