package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength = 255
	MaxBioLength  = 5000

	dateLayout = "2006-01-02"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"` // YYYY-MM-DD
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("firstName is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("lastName is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
		validation.Field(&r.BirthDate,
			validation.Date(dateLayout).Error("birthDate must be YYYY-MM-DD"),
		),
	)
}

// UpdateAuthorRequest - PATCH /api/v1/authors/:id
// All fields optional; nil means "leave unchanged".
type UpdateAuthorRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.NilOrNotEmpty.Error("firstName must not be empty"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.NilOrNotEmpty.Error("lastName must not be empty"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
		validation.Field(&r.BirthDate,
			validation.Date(dateLayout).Error("birthDate must be YYYY-MM-DD"),
		),
	)
}

// UpdateFields is the partial update set handed to the repository.
// Only non-nil fields end up in the SET clause.
type UpdateFields struct {
	FirstName *string
	LastName  *string
	Bio       *string
	BirthDate *time.Time
}

func (f UpdateFields) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Bio == nil && f.BirthDate == nil
}

// ToUpdateFields converts the request into a repository update set.
// The request must already be validated, so the date parse cannot fail.
func (r *UpdateAuthorRequest) ToUpdateFields() UpdateFields {
	fields := UpdateFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
	if r.BirthDate != nil {
		if d, err := time.Parse(dateLayout, *r.BirthDate); err == nil {
			fields.BirthDate = &d
		}
	}
	return fields
}

// ToEntity converts CreateAuthorRequest to an Author ready for insert.
func (r *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
	if r.BirthDate != nil {
		if d, err := time.Parse(dateLayout, *r.BirthDate); err == nil {
			a.BirthDate = &d
		}
	}
	return a
}

// AuthorFilter - query parameters for GET /api/v1/authors
// Page and Limit stay raw strings; the pagination package owns parsing.
type AuthorFilter struct {
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
}

// AuthorResponse is the externally exposed author shape.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       *string   `json:"bio,omitempty"`
	BirthDate *string   `json:"birthDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Author) ToResponse() *AuthorResponse {
	resp := &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.BirthDate != nil {
		d := a.BirthDate.Format(dateLayout)
		resp.BirthDate = &d
	}
	return resp
}
