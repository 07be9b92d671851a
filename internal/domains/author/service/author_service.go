package service

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/pagination"
	"bookcatalog-backend/internal/shared/utils"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		// No pre-checks beyond the datastore's own constraints; an
		// insert rejection surfaces as a write error to the caller.
		return nil, fmt.Errorf("%w: %v", author.ErrDatabaseWrite, err)
	}
	return created, nil
}

func (s *authorService) FindAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	params, err := pagination.Parse(filter.Page, filter.Limit)
	if err != nil {
		return nil, 0, err
	}

	authors, total, err := s.repo.GetAll(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", author.ErrDatabaseWrite, err)
	}

	return authors, total, nil
}

func (s *authorService) FindOne(ctx context.Context, id string) (*author.Author, error) {
	if !utils.IsValidUUID(id) {
		return nil, fmt.Errorf("%w: %q", author.ErrInvalidAuthorID, id)
	}

	// A datastore failure during the lookup is reported the same way as a
	// missing row.
	a, err := s.repo.GetByID(ctx, utils.ParseStringToUUID(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
	}

	return a, nil
}

func (s *authorService) Update(ctx context.Context, id string, req *author.UpdateAuthorRequest) (*author.Author, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.ToUpdateFields()
	if fields.IsEmpty() {
		// Nothing supplied: succeed without touching the row.
		return current, nil
	}

	updated, err := s.repo.Update(ctx, current.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", author.ErrDatabaseWrite, err)
	}

	return updated, nil
}

func (s *authorService) Remove(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return fmt.Errorf("%w: %q", author.ErrInvalidAuthorID, id)
	}

	uid := utils.ParseStringToUUID(id)

	exists, err := s.repo.ExistsByID(ctx, uid)
	if err != nil || !exists {
		return fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("%w: %v", author.ErrDatabaseWrite, err)
	}

	return nil
}
