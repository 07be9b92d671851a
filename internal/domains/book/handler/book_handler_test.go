package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

type fakeBookService struct {
	CreateFn  func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error)
	FindAllFn func(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error)
	FindOneFn func(ctx context.Context, id string) (*book.Book, error)
	UpdateFn  func(ctx context.Context, id string, req *book.UpdateBookRequest) (*book.Book, error)
	RemoveFn  func(ctx context.Context, id string) error
}

func (f *fakeBookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeBookService) FindAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	return f.FindAllFn(ctx, filter)
}

func (f *fakeBookService) FindOne(ctx context.Context, id string) (*book.Book, error) {
	return f.FindOneFn(ctx, id)
}

func (f *fakeBookService) Update(ctx context.Context, id string, req *book.UpdateBookRequest) (*book.Book, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeBookService) Remove(ctx context.Context, id string) error {
	return f.RemoveFn(ctx, id)
}

func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewBookHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func sampleBook() *book.Book {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	authorID := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	return &book.Book{
		ID:        uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Title:     "The Dispossessed",
		ISBN:      "9780306406157",
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
		Author: &author.Author{
			ID:        authorID,
			FirstName: "Test",
			LastName:  "Author",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func TestCreateBook_Returns201WithAuthor(t *testing.T) {
	svc := &fakeBookService{
		CreateFn: func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
			b := sampleBook()
			b.Title = req.Title
			return b, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"title":    "The Dispossessed",
		"isbn":     "978-0-306-40615-7",
		"authorId": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data book.BookResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The Dispossessed", resp.Data.Title)
	require.NotNil(t, resp.Data.Author)
	assert.Equal(t, "Test", resp.Data.Author.FirstName)
}

func TestCreateBook_BadISBNShapeIs400(t *testing.T) {
	router := setupRouter(&fakeBookService{})

	body, _ := json.Marshal(map[string]string{
		"title":    "The Dispossessed",
		"isbn":     "12345",
		"authorId": uuid.NewString(),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBook_MissingAuthorIs404(t *testing.T) {
	svc := &fakeBookService{
		CreateFn: func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
			return nil, fmt.Errorf("%w: %s", author.ErrAuthorNotFound, req.AuthorID)
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"title":    "The Dispossessed",
		"isbn":     "9780306406157",
		"authorId": uuid.NewString(),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBook_DuplicateISBNIs400(t *testing.T) {
	svc := &fakeBookService{
		CreateFn: func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
			return nil, fmt.Errorf("%w: book with ISBN %s already exists", book.ErrISBNAlreadyExists, req.ISBN)
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"title":    "The Dispossessed",
		"isbn":     "9780306406157",
		"authorId": uuid.NewString(),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "9780306406157")
}

func TestListBooks_MetaBlock(t *testing.T) {
	svc := &fakeBookService{
		FindAllFn: func(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
			return []book.Book{*sampleBook()}, 23, nil
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/books?page=1&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []book.BookResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.NotNil(t, resp.Data[0].Author)
	assert.Equal(t, int64(23), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestListBooks_FilterPassthrough(t *testing.T) {
	var gotFilter book.BookFilter
	svc := &fakeBookService{
		FindAllFn: func(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
			gotFilter = filter
			return []book.Book{}, 0, nil
		},
	}
	router := setupRouter(svc)

	authorID := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/books?genre=fiction&authorId="+authorID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fiction", gotFilter.Genre)
	assert.Equal(t, authorID, gotFilter.AuthorID)
}

func TestListBooks_NegativePageIs400(t *testing.T) {
	router := setupRouter(&fakeBookService{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/books?page=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBook_MalformedUUIDIs400(t *testing.T) {
	svc := &fakeBookService{
		FindOneFn: func(ctx context.Context, id string) (*book.Book, error) {
			return nil, book.ErrInvalidBookID
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/books/invalid-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBook_MissingIs404(t *testing.T) {
	svc := &fakeBookService{
		FindOneFn: func(ctx context.Context, id string) (*book.Book, error) {
			return nil, book.ErrBookNotFound
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/books/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBook_Returns200(t *testing.T) {
	svc := &fakeBookService{
		UpdateFn: func(ctx context.Context, id string, req *book.UpdateBookRequest) (*book.Book, error) {
			b := sampleBook()
			if req.Title != nil {
				b.Title = *req.Title
			}
			return b, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{"title": "Renamed"})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/books/"+uuid.NewString(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data book.BookResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Data.Title)
}

func TestDeleteBook_Returns204(t *testing.T) {
	svc := &fakeBookService{
		RemoveFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/books/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
