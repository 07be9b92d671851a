package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines author data access. Abstracted behind an interface so
// services can be tested against a fake and the Postgres implementation
// stays swappable.
type Repository interface {
	// Create inserts a new author and returns the row with its generated
	// id and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves an author by id.
	// Returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves one page of authors matching the filter, newest
	// first, plus the total matching count computed over the same filter.
	GetAll(ctx context.Context, filter AuthorFilter, limit, offset int) ([]Author, int64, error)

	// Update applies the non-nil fields and returns the refreshed row.
	// The caller guarantees the set is non-empty.
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Author, error)

	// Delete removes an author by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the full row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
