// Package contract defines the request and response shapes shared between
// the HTTP boundary and the service layer.
package contract

import "github.com/alexanderramin/notedir/internal/domain"

// Paging defaults and bounds for note search.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchRequest carries one search call's parameters. It is built fresh
// per request; there is no shared query state between calls.
type SearchRequest struct {
	Query    string
	Page     int
	PageSize int
	Sort     domain.NoteSortKey
}

// Offset returns the zero-indexed slice offset for the 1-indexed page.
func (r SearchRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// SearchResponse is the page envelope returned by note search. Total is
// the match count before paging; Page and PageSize echo the request.
type SearchResponse struct {
	Items    []*domain.Note `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListRequest carries offset/limit/sort for plain entity listings.
type ListRequest struct {
	Skip  int
	Limit int
	Sort  string
}

// Listing defaults and bounds, shared by notes, tags, and action items.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)
