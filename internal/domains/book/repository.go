package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines book data access. Single-row and list reads return
// books joined with their author; bare writes return the row as stored.
type Repository interface {
	// Create inserts a new book and returns the row with its generated id
	// and timestamps. The returned book carries no author; callers re-read
	// via GetByID for the denormalized shape.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID retrieves a book by id with its author embedded.
	// Returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves one page of books matching the filter, newest
	// first, each with its author embedded, plus the total matching count
	// computed over the same filter.
	GetAll(ctx context.Context, filter BookFilter, limit, offset int) ([]Book, int64, error)

	// Update applies the non-nil fields and returns the refreshed bare
	// row. The caller guarantees the set is non-empty.
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Book, error)

	// Delete removes a book by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the full row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ISBNExists checks whether any book carries exactly this ISBN.
	ISBNExists(ctx context.Context, isbn string) (bool, error)

	// ISBNExistsExcept checks ISBN uniqueness against all books other
	// than the one being updated.
	ISBNExistsExcept(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error)
}
