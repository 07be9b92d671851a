package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
)

type fakeAuthorService struct {
	CreateFn  func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error)
	FindAllFn func(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error)
	FindOneFn func(ctx context.Context, id string) (*author.Author, error)
	UpdateFn  func(ctx context.Context, id string, req *author.UpdateAuthorRequest) (*author.Author, error)
	RemoveFn  func(ctx context.Context, id string) error
}

func (f *fakeAuthorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeAuthorService) FindAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	return f.FindAllFn(ctx, filter)
}

func (f *fakeAuthorService) FindOne(ctx context.Context, id string) (*author.Author, error) {
	return f.FindOneFn(ctx, id)
}

func (f *fakeAuthorService) Update(ctx context.Context, id string, req *author.UpdateAuthorRequest) (*author.Author, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeAuthorService) Remove(ctx context.Context, id string) error {
	return f.RemoveFn(ctx, id)
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthorHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func sampleAuthor() *author.Author {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &author.Author{
		ID:        uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		FirstName: "Test",
		LastName:  "Author",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAuthor_Returns201(t *testing.T) {
	svc := &fakeAuthorService{
		CreateFn: func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
			a := sampleAuthor()
			a.FirstName = req.FirstName
			a.LastName = req.LastName
			return a, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{"firstName": "Test", "lastName": "Author"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data author.AuthorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test", resp.Data.FirstName)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)
}

func TestCreateAuthor_MissingFirstNameIs400(t *testing.T) {
	router := setupRouter(&fakeAuthorService{})

	body, _ := json.Marshal(map[string]string{"lastName": "Author"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAuthors_MetaBlock(t *testing.T) {
	svc := &fakeAuthorService{
		FindAllFn: func(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
			return []author.Author{*sampleAuthor()}, 23, nil
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/authors?page=1&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []author.AuthorResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(23), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestListAuthors_PageBeyondData(t *testing.T) {
	svc := &fakeAuthorService{
		FindAllFn: func(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
			return []author.Author{}, 23, nil
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/authors?page=4&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []author.AuthorResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
	assert.Equal(t, int64(23), resp.Meta.Total)
	assert.Equal(t, 4, resp.Meta.Page)
}

func TestListAuthors_NegativePageIs400(t *testing.T) {
	router := setupRouter(&fakeAuthorService{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/authors?page=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuthor_MalformedUUIDIs400(t *testing.T) {
	svc := &fakeAuthorService{
		FindOneFn: func(ctx context.Context, id string) (*author.Author, error) {
			return nil, author.ErrInvalidAuthorID
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/authors/invalid-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuthor_MissingIs404(t *testing.T) {
	svc := &fakeAuthorService{
		FindOneFn: func(ctx context.Context, id string) (*author.Author, error) {
			return nil, author.ErrAuthorNotFound
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/authors/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAuthor_Returns204(t *testing.T) {
	svc := &fakeAuthorService{
		RemoveFn: func(ctx context.Context, id string) error {
			return nil
		},
	}
	router := setupRouter(svc)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/authors/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateAuthor_Returns200(t *testing.T) {
	svc := &fakeAuthorService{
		UpdateFn: func(ctx context.Context, id string, req *author.UpdateAuthorRequest) (*author.Author, error) {
			a := sampleAuthor()
			if req.FirstName != nil {
				a.FirstName = *req.FirstName
			}
			return a, nil
		},
	}
	router := setupRouter(svc)

	body, _ := json.Marshal(map[string]string{"firstName": "Renamed"})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/authors/"+uuid.NewString(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data author.AuthorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Data.FirstName)
}
