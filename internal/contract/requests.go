package contract

// CreateNoteRequest is the body of POST /notes/.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateActionItemRequest is the body of POST /action-items/.
type CreateActionItemRequest struct {
	Description string `json:"description"`
}

// CreateTagRequest is the body of POST /tags/.
type CreateTagRequest struct {
	Name string `json:"name"`
}
