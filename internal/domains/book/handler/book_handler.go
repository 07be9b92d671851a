package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/pagination"
	"bookcatalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.POST("", h.Create)
		books.GET("", h.GetAll)
		books.GET("/:id", h.GetByID)
		books.PATCH("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}

func respondError(c *gin.Context, err error) {
	status := book.ToHTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetAll - GET /api/v1/books?page=&limit=&title=&isbn=&genre=&authorId=
func (h *BookHandler) GetAll(c *gin.Context) {
	var filter book.BookFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// The same parser the service uses, so the meta block and the query
	// window always agree on the effective page size.
	params, err := pagination.Parse(filter.Page, filter.Limit)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, total, err := h.service.FindAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]book.BookResponse, len(books))
	for i, b := range books {
		data[i] = *b.ToResponse()
	}

	response.List(c, data, params.NewMeta(total))
}

// GetByID - GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	b, err := h.service.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// Update - PATCH /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
