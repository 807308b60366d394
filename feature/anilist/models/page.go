package models

import "encoding/json"

// PageRequest is the GraphQL request body.
type PageRequest struct {
	Query     string        `json:"query"`
	Variables PageVariables `json:"variables"`
}

// PageVariables are the variables of the page query.
type PageVariables struct {
	Page    int      `json:"page"`
	PerPage int      `json:"perPage"`
	Type    string   `json:"type"`
	Sort    []string `json:"sort"`
}

// PageResponse is the GraphQL response envelope of the page query.
type PageResponse struct {
	Data struct {
		Page struct {
			PageInfo PageInfo `json:"pageInfo"`
			// Media is kept raw so every field reaches the store untouched.
			Media []json.RawMessage `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// PageInfo describes the position of a page in the result set.
type PageInfo struct {
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
}

// GraphQLError is a single entry of the errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
