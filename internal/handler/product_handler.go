// Package handler adapts HTTP requests to the catalog services. Handlers
// only read raw strings off the request and translate errors to status
// codes; all parsing and validation happens in the service layer.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"catalva-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service catalog.Service
}

func NewProductHandler(service catalog.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts handles GET /products with optional filter, sort, and
// pagination query parameters.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	raw := catalog.RawCriteria{
		MinPrice:   c.Query("min_price"),
		MaxPrice:   c.Query("max_price"),
		SearchKey:  c.Query("search"),
		SupplierID: c.Query("supplier_id"),
		CategoryID: c.Query("category_id"),
		SortKey:    c.Query("sort"),
		SortDesc:   c.Query("sort_desc"),
		PageNumber: c.Query("page"),
		PageSize:   c.Query("page_size"),
	}

	result, err := h.service.ListProducts(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidPriceBound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// TopSellers handles GET /products/top-sellers?count=N.
func (h *ProductHandler) TopSellers(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be an integer"})
		return
	}

	entries, err := h.service.TopSellers(c.Request.Context(), count)
	if err != nil {
		if errors.Is(err, catalog.ErrNegativeCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank top sellers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	summary, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input catalog.NewProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyProductName) || errors.Is(err, catalog.ErrNegativePrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

type newImageRequest struct {
	Href string `json:"href"`
}

func (h *ProductHandler) AddImage(c *gin.Context) {
	var req newImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.service.AddImage(c.Request.Context(), c.Param("id"), req.Href)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyImageHref):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, catalog.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add image"})
		}
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *ProductHandler) RemoveImage(c *gin.Context) {
	err := h.service.RemoveImage(c.Request.Context(), c.Param("id"), c.Param("imageId"))
	if err != nil {
		if errors.Is(err, catalog.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove image"})
		return
	}

	c.Status(http.StatusNoContent)
}
