package contract

// ExtractionResult holds what extraction derived from a note's content.
// Applied reports whether the results were persisted (tags merged onto the
// note, action items created) or only previewed.
type ExtractionResult struct {
	Tags        []string `json:"tags"`
	ActionItems []string `json:"action_items"`
	Applied     bool     `json:"applied"`
}
