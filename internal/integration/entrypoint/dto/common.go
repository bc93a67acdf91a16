// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/google/uuid"

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// uuidPtrToString converts an optional UUID to an optional string.
func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
