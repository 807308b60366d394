package models

import "encoding/json"

// PageResponse is a paged Jikan list response.
type PageResponse struct {
	Pagination Pagination `json:"pagination"`
	// Data is kept raw so every field reaches the store untouched.
	Data []json.RawMessage `json:"data"`
}

// Pagination describes the position of a page in the result set.
type Pagination struct {
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
	CurrentPage     int  `json:"current_page"`
}

// ErrorResponse is the body Jikan sends with non-200 statuses.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
