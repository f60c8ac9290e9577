package domain

import (
	"fmt"
	"strings"
	"time"
)

// Tag is a short label attached to notes. Names are unique and stored
// case-folded.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTagName case-folds and trims a tag name.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks the fields a client is allowed to set at creation.
func (t *Tag) Validate() error {
	if NormalizeTagName(t.Name) == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	return nil
}
