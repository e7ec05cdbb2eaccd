package handler

import (
	"net/http"
	"strconv"

	"catalva-be/internal/category"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var filter *string
	if f := c.Query("filter"); f != "" {
		filter = &f
	}

	categories, err := h.service.GetCategories(
		c.Request.Context(),
		filter,
		int32QueryParam(c, "limit"),
		int32QueryParam(c, "page"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": categories})
}

type newCategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req newCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name cannot be empty"})
		return
	}

	created, err := h.service.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func int32QueryParam(c *gin.Context, name string) *int32 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	v32 := int32(v)
	return &v32
}
