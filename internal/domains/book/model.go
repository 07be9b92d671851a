package book

import (
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

// Book is the domain entity. Every read path returns it joined with its
// author, so Author is populated on rows coming back from the repository's
// GetByID/GetAll; it stays nil on a freshly inserted row before the re-read.
type Book struct {
	ID uuid.UUID `json:"id" db:"id"`

	Title string `json:"title" db:"title"`
	ISBN  string `json:"isbn" db:"isbn"`

	// Optional details
	PublishedDate *time.Time `json:"publishedDate" db:"published_date"`
	Genre         *string    `json:"genre" db:"genre"`

	// Many books reference one author; the author's lifecycle is
	// independent and deleting an author never cascades here.
	AuthorID uuid.UUID `json:"authorId" db:"author_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Author *author.Author `json:"author,omitempty" db:"-"`
}
