package domain

type NoteSortKey string

const (
	SortCreatedDesc NoteSortKey = "created_desc"
	SortCreatedAsc  NoteSortKey = "created_asc"
	SortTitleAsc    NoteSortKey = "title_asc"
)

// ValidNoteSortKeys is the canonical set of accepted note sort keys.
var ValidNoteSortKeys = map[NoteSortKey]bool{
	SortCreatedDesc: true,
	SortCreatedAsc:  true,
	SortTitleAsc:    true,
}
