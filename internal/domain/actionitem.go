package domain

import (
	"fmt"
	"time"
)

// ActionItem is a discrete task. SourceNoteID links back to the note whose
// extraction produced it; it is nil for user-created items.
type ActionItem struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Completed    bool      `json:"completed"`
	SourceNoteID *string   `json:"source_note_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the fields a client is allowed to set at creation.
func (a *ActionItem) Validate() error {
	if a.Description == "" {
		return fmt.Errorf("description must not be empty")
	}
	return nil
}

// ActionItemPatch enumerates the fields a partial update may change.
// Nil pointers leave the stored value untouched.
type ActionItemPatch struct {
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Apply merges the patch into the item.
func (p ActionItemPatch) Apply(a *ActionItem) {
	a.Description = CoalesceStr(StrFromPtr(p.Description), a.Description)
	a.Completed = BoolFromPtrWithDefault(a.Completed, p.Completed)
}
