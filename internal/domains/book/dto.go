package book

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/utils"
)

const (
	MaxTitleLength = 500
	MaxGenreLength = 100

	dateLayout = "2006-01-02"
)

// isbnShape accepts ISBN-10 or ISBN-13, hyphen tolerant.
var isbnShape = validation.By(func(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s == "" {
		return nil // Required / NilOrNotEmpty are checked separately
	}
	if !utils.IsValidISBN(s) {
		return errors.New("must be a valid 10 or 13 digit ISBN")
	}
	return nil
})

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title         string  `json:"title"`
	ISBN          string  `json:"isbn"`
	PublishedDate *string `json:"publishedDate,omitempty"` // YYYY-MM-DD
	Genre         *string `json:"genre,omitempty"`
	AuthorID      string  `json:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			isbnShape,
		),
		validation.Field(&r.PublishedDate,
			validation.Date(dateLayout).Error("publishedDate must be YYYY-MM-DD"),
		),
		validation.Field(&r.Genre,
			validation.Length(0, MaxGenreLength),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
		),
	)
}

// UpdateBookRequest - PATCH /api/v1/books/:id
// All fields optional; nil means "leave unchanged".
type UpdateBookRequest struct {
	Title         *string `json:"title,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	AuthorID      *string `json:"authorId,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.NilOrNotEmpty.Error("isbn must not be empty"),
			isbnShape,
		),
		validation.Field(&r.PublishedDate,
			validation.Date(dateLayout).Error("publishedDate must be YYYY-MM-DD"),
		),
		validation.Field(&r.Genre,
			validation.Length(0, MaxGenreLength),
		),
		validation.Field(&r.AuthorID,
			validation.NilOrNotEmpty.Error("authorId must not be empty"),
		),
	)
}

// UpdateFields is the partial update set handed to the repository.
type UpdateFields struct {
	Title         *string
	ISBN          *string
	PublishedDate *time.Time
	Genre         *string
	AuthorID      *uuid.UUID
}

func (f UpdateFields) IsEmpty() bool {
	return f.Title == nil && f.ISBN == nil && f.PublishedDate == nil &&
		f.Genre == nil && f.AuthorID == nil
}

// ToUpdateFields converts the validated request into a repository update
// set. AuthorID must already have passed the author service's UUID check.
func (r *UpdateBookRequest) ToUpdateFields() UpdateFields {
	fields := UpdateFields{
		Title: r.Title,
		ISBN:  r.ISBN,
		Genre: r.Genre,
	}
	if r.PublishedDate != nil {
		if d, err := time.Parse(dateLayout, *r.PublishedDate); err == nil {
			fields.PublishedDate = &d
		}
	}
	if r.AuthorID != nil {
		uid := utils.ParseStringToUUID(*r.AuthorID)
		fields.AuthorID = &uid
	}
	return fields
}

// ToEntity converts CreateBookRequest to a Book ready for insert.
// AuthorID must already have been resolved against the author service.
func (r *CreateBookRequest) ToEntity() *Book {
	b := &Book{
		Title:    r.Title,
		ISBN:     r.ISBN,
		Genre:    r.Genre,
		AuthorID: utils.ParseStringToUUID(r.AuthorID),
	}
	if r.PublishedDate != nil {
		if d, err := time.Parse(dateLayout, *r.PublishedDate); err == nil {
			b.PublishedDate = &d
		}
	}
	return b
}

// BookFilter - query parameters for GET /api/v1/books
// Page and Limit stay raw strings; the pagination package owns parsing.
type BookFilter struct {
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	Title    string `form:"title"`
	ISBN     string `form:"isbn"`
	Genre    string `form:"genre"`
	AuthorID string `form:"authorId"`
}

// BookResponse is the externally exposed book shape. The author summary is
// always embedded; list and detail reads join it in.
type BookResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	ISBN          string                 `json:"isbn"`
	PublishedDate *string                `json:"publishedDate,omitempty"`
	Genre         *string                `json:"genre,omitempty"`
	AuthorID      uuid.UUID              `json:"authorId"`
	Author        *author.AuthorResponse `json:"author,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func (b Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		Genre:     b.Genre,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.PublishedDate != nil {
		d := b.PublishedDate.Format(dateLayout)
		resp.PublishedDate = &d
	}
	if b.Author != nil {
		resp.Author = b.Author.ToResponse()
	}
	return resp
}
