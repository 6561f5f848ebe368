package queries

import (
	"errors"
	"net/http"
)

// Domain errors for query generation.
var (
	ErrInvalidSeed    = errors.New("seed is empty")
	ErrInvalidRequest = errors.New("invalid request")
)

// MapHTTPStatus maps query domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidSeed) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
