package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity, independent of transport concerns.
// The id and both timestamps are assigned by the database.
type Author struct {
	ID uuid.UUID `json:"id" db:"id"`

	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`

	// Optional details
	Bio       *string    `json:"bio" db:"bio"`
	BirthDate *time.Time `json:"birthDate" db:"birth_date"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
