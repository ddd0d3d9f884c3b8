package dto

import "time"

// APIResponse is the standard envelope for every endpoint: a human-readable
// message plus a domain payload, or an error detail.
type APIResponse struct {
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a success envelope around a payload
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"20"`
	Total int64 `json:"total" example:"135"`
	Pages int   `json:"pages" example:"7"`
}
