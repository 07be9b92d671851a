package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/pagination"
	"bookcatalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.GET("", h.GetAll)
		authors.GET("/:id", h.GetByID)
		authors.PATCH("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
	}
}

func respondError(c *gin.Context, err error) {
	status := author.ToHTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
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

// GetAll - GET /api/v1/authors?page=&limit=&firstName=&lastName=
func (h *AuthorHandler) GetAll(c *gin.Context) {
	var filter author.AuthorFilter
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

	authors, total, err := h.service.FindAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		data[i] = *a.ToResponse()
	}

	response.List(c, data, params.NewMeta(total))
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	a, err := h.service.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// Update - PATCH /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var req author.UpdateAuthorRequest
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

// Delete - DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}
