package book

import (
	"errors"
	"net/http"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/pagination"
)

var (
	// Validation
	ErrInvalidBookID     = errors.New("book id is not a valid UUID")
	ErrISBNAlreadyExists = errors.New("duplicate ISBN")

	// Lookup
	ErrBookNotFound = errors.New("book not found")

	// Persistence
	ErrDatabaseWrite = errors.New("database write error")
)

// ToHTTPStatus maps a service error to an HTTP status code. Author errors
// propagate through book operations unchanged, so they are mapped here too.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, author.ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBookID),
		errors.Is(err, ErrISBNAlreadyExists),
		errors.Is(err, ErrDatabaseWrite),
		errors.Is(err, author.ErrInvalidAuthorID),
		errors.Is(err, author.ErrDatabaseWrite),
		errors.Is(err, pagination.ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
