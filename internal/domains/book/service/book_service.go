package service

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/pagination"
	"bookcatalog-backend/internal/shared/utils"
)

// bookService implements book.Service. The author dependency is the author
// service itself, not its repository: referenced-author checks reuse the
// author domain's validation and error semantics wholesale.
type bookService struct {
	repo    book.Repository
	authors author.Service
}

func NewBookService(repo book.Repository, authors author.Service) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	// 1. The referenced author must exist. The author service's errors
	// (malformed UUID, missing author) pass through unchanged.
	if _, err := s.authors.FindOne(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	// 2. ISBN uniqueness pre-check. Not atomic with the insert below;
	// the unique index on isbn catches the concurrent-duplicate race.
	exists, err := s.repo.ISBNExists(ctx, req.ISBN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: book with ISBN %s already exists", book.ErrISBNAlreadyExists, req.ISBN)
	}

	// 3. Insert, then re-read joined with the author for the
	// denormalized response shape.
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	full, err := s.repo.GetByID(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	return full, nil
}

func (s *bookService) FindAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	if filter.AuthorID != "" && !utils.IsValidUUID(filter.AuthorID) {
		return nil, 0, fmt.Errorf("%w: %q", author.ErrInvalidAuthorID, filter.AuthorID)
	}

	params, err := pagination.Parse(filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	books, total, err := s.repo.GetAll(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	return books, total, nil
}

func (s *bookService) FindOne(ctx context.Context, id string) (*book.Book, error) {
	if !utils.IsValidUUID(id) {
		return nil, fmt.Errorf("%w: %q", book.ErrInvalidBookID, id)
	}

	// A datastore failure during the lookup is reported the same way as a
	// missing row.
	b, err := s.repo.GetByID(ctx, utils.ParseStringToUUID(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", book.ErrBookNotFound, id)
	}

	return b, nil
}

func (s *bookService) Update(ctx context.Context, id string, req *book.UpdateBookRequest) (*book.Book, error) {
	existing, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	// A new author reference must resolve before anything is written.
	if req.AuthorID != nil {
		if _, err := s.authors.FindOne(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
	}

	// A supplied ISBN is re-checked against every other book; the row
	// being updated may keep its own.
	if req.ISBN != nil {
		taken, err := s.repo.ISBNExistsExcept(ctx, *req.ISBN, existing.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
		}
		if taken {
			return nil, fmt.Errorf("%w: book with ISBN %s already exists", book.ErrISBNAlreadyExists, *req.ISBN)
		}
	}

	fields := req.ToUpdateFields()
	if fields.IsEmpty() {
		// Nothing supplied: succeed without touching the row.
		return existing, nil
	}

	if _, err := s.repo.Update(ctx, existing.ID, fields); err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	full, err := s.repo.GetByID(ctx, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	return full, nil
}

func (s *bookService) Remove(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return fmt.Errorf("%w: %q", book.ErrInvalidBookID, id)
	}

	uid := utils.ParseStringToUUID(id)

	exists, err := s.repo.ExistsByID(ctx, uid)
	if err != nil || !exists {
		return fmt.Errorf("%w: %s", book.ErrBookNotFound, id)
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", book.ErrDatabaseWrite, err)
	}

	return nil
}
