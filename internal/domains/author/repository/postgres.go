package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/cache"
)

// postgresRepository implements author.Repository on pgxpool with a
// read-through Redis cache for single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = "id, first_name, last_name, bio, birth_date, created_at, updated_at"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Bio,
		&a.BirthDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, bio, birth_date)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.Bio, a.BirthDate))
	if err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	// Best effort; a cache write failure never fails the read.
	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

// buildWhereClause turns the filter into a WHERE clause with positional
// args. Name filters are case-insensitive substring matches.
func buildWhereClause(filter author.AuthorFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.FirstName != "" {
		conditions = append(conditions, fmt.Sprintf("first_name ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.FirstName)
		argIndex++
	}

	if filter.LastName != "" {
		conditions = append(conditions, fmt.Sprintf("last_name ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.LastName)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) GetAll(ctx context.Context, filter author.AuthorFilter, limit, offset int) ([]author.Author, int64, error) {
	whereClause, args := buildWhereClause(filter)

	// Count and data queries share the same filter so the total always
	// matches the returned window.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM authors %s`, whereClause)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	listQuery := fmt.Sprintf(`
        SELECT %s
        FROM authors
        %s
        ORDER BY created_at DESC
        LIMIT $%d OFFSET $%d
    `, authorColumns, whereClause, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.LastName,
			&a.Bio,
			&a.BirthDate,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields author.UpdateFields) (*author.Author, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if fields.FirstName != nil {
		addSet("first_name", *fields.FirstName)
	}
	if fields.LastName != nil {
		addSet("last_name", *fields.LastName)
	}
	if fields.Bio != nil {
		addSet("bio", *fields.Bio)
	}
	if fields.BirthDate != nil {
		addSet("birth_date", *fields.BirthDate)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
        UPDATE authors
        SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setClauses, ", "), argIndex, authorColumns)

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, append(args, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
