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
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/cache"
)

// postgresRepository implements book.Repository on pgxpool with a
// read-through Redis cache for single-row lookups. List and detail reads
// join the author row so responses never need a second client call.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

const bookColumns = "id, title, isbn, published_date, genre, author_id, created_at, updated_at"

const joinedColumns = `
        b.id, b.title, b.isbn, b.published_date, b.genre, b.author_id,
        b.created_at, b.updated_at,
        a.id, a.first_name, a.last_name, a.bio, a.birth_date,
        a.created_at, a.updated_at`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.ISBN,
		&b.PublishedDate,
		&b.Genre,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanJoinedBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	var a author.Author
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.ISBN,
		&b.PublishedDate,
		&b.Genre,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
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
	b.Author = &a
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, isbn, published_date, genre, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.ISBN, b.PublishedDate, b.Genre, b.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM books b
        JOIN authors a ON b.author_id = a.id
        WHERE b.id = $1
    `, joinedColumns)

	b, err := scanJoinedBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return b, nil
}

// buildWhereClause turns the filter into a WHERE clause with positional
// args. Text filters are case-insensitive substring matches; authorId is
// an exact match, validated upstream by the service.
func buildWhereClause(filter book.BookFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	addILike := func(column, value string) {
		conditions = append(conditions, fmt.Sprintf("b.%s ILIKE '%%' || $%d || '%%'", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.Title != "" {
		addILike("title", filter.Title)
	}
	if filter.ISBN != "" {
		addILike("isbn", filter.ISBN)
	}
	if filter.Genre != "" {
		addILike("genre", filter.Genre)
	}
	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, filter.AuthorID)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) GetAll(ctx context.Context, filter book.BookFilter, limit, offset int) ([]book.Book, int64, error) {
	whereClause, args := buildWhereClause(filter)

	// Count and data queries share the same filter so the total always
	// matches the returned window.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM books b %s`, whereClause)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	listQuery := fmt.Sprintf(`
        SELECT %s
        FROM books b
        JOIN authors a ON b.author_id = a.id
        %s
        ORDER BY b.created_at DESC
        LIMIT $%d OFFSET $%d
    `, joinedColumns, whereClause, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, listQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanJoinedBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields book.UpdateFields) (*book.Book, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if fields.Title != nil {
		addSet("title", *fields.Title)
	}
	if fields.ISBN != nil {
		addSet("isbn", *fields.ISBN)
	}
	if fields.PublishedDate != nil {
		addSet("published_date", *fields.PublishedDate)
	}
	if fields.Genre != nil {
		addSet("genre", *fields.Genre)
	}
	if fields.AuthorID != nil {
		addSet("author_id", *fields.AuthorID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
        UPDATE books
        SET %s
        WHERE id = $%d
        RETURNING %s
    `, strings.Join(setClauses, ", "), argIndex, bookColumns)

	updated, err := scanBook(r.pool.QueryRow(ctx, query, append(args, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ISBNExists(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ISBNExistsExcept(ctx context.Context, isbn string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1 AND id <> $2)`,
		isbn, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}
	return exists, nil
}
