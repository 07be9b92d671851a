package book

import "context"

// Service defines the book business operations. Cross-entity rules
// (the referenced author must exist) delegate to the author service, whose
// errors pass through unchanged.
type Service interface {
	// Create validates the referenced author, pre-checks ISBN uniqueness
	// and inserts the book, then re-reads it joined with its author.
	// The check-then-insert pair is not transactional; the unique index
	// on isbn is the backstop for concurrent duplicates.
	// Errors: author.ErrInvalidAuthorID, author.ErrAuthorNotFound,
	// ErrISBNAlreadyExists, ErrDatabaseWrite.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// FindAll returns one page of author-joined books plus the total
	// matching count. title/isbn/genre filter by case-insensitive
	// substring; authorId filters by exact match and must be a valid UUID.
	// Errors: author.ErrInvalidAuthorID, pagination.ErrInvalidPage,
	// ErrDatabaseWrite.
	FindAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)

	// FindOne returns the book with the given id, author embedded.
	// Errors: ErrInvalidBookID, ErrBookNotFound.
	FindOne(ctx context.Context, id string) (*Book, error)

	// Update applies the supplied fields only. A supplied authorId is
	// re-validated against the author service; a supplied isbn is
	// re-checked against all other books. An empty update set is a no-op.
	// Errors: ErrInvalidBookID, ErrBookNotFound, author errors,
	// ErrISBNAlreadyExists, ErrDatabaseWrite.
	Update(ctx context.Context, id string, req *UpdateBookRequest) (*Book, error)

	// Remove deletes the book. Nothing references books, so no dependent
	// cleanup happens.
	// Errors: ErrInvalidBookID, ErrBookNotFound, ErrDatabaseWrite.
	Remove(ctx context.Context, id string) error
}
