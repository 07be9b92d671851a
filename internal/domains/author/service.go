package author

import "context"

// Service defines the author business operations. Ids arrive as raw strings
// from the transport layer; the service owns UUID-shape validation so a
// malformed id is a validation failure, never a lookup miss.
type Service interface {
	// Create persists a new author.
	// Errors: ErrDatabaseWrite if the insert is rejected.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// FindAll returns one page of authors plus the total matching count.
	// firstName/lastName filter by case-insensitive substring.
	// Errors: pagination.ErrInvalidPage, ErrDatabaseWrite.
	FindAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// FindOne returns the author with the given id.
	// Errors: ErrInvalidAuthorID, ErrAuthorNotFound (a datastore failure
	// during the lookup is indistinguishable from a missing row).
	FindOne(ctx context.Context, id string) (*Author, error)

	// Update applies the supplied fields only. An empty update set is a
	// no-op that returns the current record unchanged.
	// Errors: ErrInvalidAuthorID, ErrAuthorNotFound, ErrDatabaseWrite.
	Update(ctx context.Context, id string, req *UpdateAuthorRequest) (*Author, error)

	// Remove deletes the author.
	// Errors: ErrInvalidAuthorID, ErrAuthorNotFound, ErrDatabaseWrite.
	Remove(ctx context.Context, id string) error
}
