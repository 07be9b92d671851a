package author

import (
	"errors"
	"net/http"

	"bookcatalog-backend/internal/shared/pagination"
)

var (
	// Validation
	ErrInvalidAuthorID = errors.New("author id is not a valid UUID")

	// Lookup
	ErrAuthorNotFound = errors.New("author not found")

	// Persistence - the datastore rejected a write that was expected to
	// succeed. Surfaced to the caller as a client error with the
	// underlying message attached.
	ErrDatabaseWrite = errors.New("database write error")
)

// ToHTTPStatus maps a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAuthorID),
		errors.Is(err, ErrDatabaseWrite),
		errors.Is(err, pagination.ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
