package domain

// Page is the envelope returned by every paginated listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
	Total int64 `json:"total"`
}
