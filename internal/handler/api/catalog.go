package api

import (
	"errors"
	"net/http"

	reqdto "glisten-lounge/internal/handler/dto/request"
	resdto "glisten-lounge/internal/handler/dto/response"
	"glisten-lounge/internal/handler/httperr"
	"glisten-lounge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves both storefront collections. Each route group binds
// the handler to one kind so the URL space stays /services and /products.
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List catalog items
// @Description List services or products, optionally filtered by category or promo flag
// @Tags catalog
// @Produce json
// @Param category query string false "Filter by category"
// @Param promo query bool false "Only monthly promo items"
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /services [get]
func (h *CatalogHandler) List(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := usecase.ListFilter{
			Category:  c.Query("category"),
			PromoOnly: c.Query("promo") == "true",
		}

		items, err := h.catalogUseCase.ListItems(c.Request.Context(), kind, filter)
		if err != nil {
			h.writeCatalogError(c, err)
			return
		}

		c.JSON(http.StatusOK, resdto.FromCatalogItems(items))
	}
}

// @Summary Get catalog item
// @Description Get a single service or product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CatalogItemResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) Get(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
			return
		}

		item, err := h.catalogUseCase.GetItem(c.Request.Context(), kind, id)
		if err != nil {
			h.writeCatalogError(c, err)
			return
		}

		c.JSON(http.StatusOK, resdto.FromCatalogItem(item))
	}
}

// @Summary Create catalog item
// @Description Create a new service or product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item fields"
// @Success 201 {object} resdto.CatalogItemResponse
// @Failure 400 {object} map[string]string
// @Router /services [post]
func (h *CatalogHandler) Create(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reqdto.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}

		item, err := h.catalogUseCase.CreateItem(c.Request.Context(), req.ToParams(kind))
		if err != nil {
			h.writeCatalogError(c, err)
			return
		}

		c.JSON(http.StatusCreated, resdto.FromCatalogItem(item))
	}
}

// @Summary Update catalog item
// @Description Patch fields of an existing service or product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} resdto.CatalogItemResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [patch]
func (h *CatalogHandler) Update(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
			return
		}

		var req reqdto.UpdateItemRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}

		item, err := h.catalogUseCase.UpdateItem(c.Request.Context(), kind, id, req.ToParams())
		if err != nil {
			h.writeCatalogError(c, err)
			return
		}

		c.JSON(http.StatusOK, resdto.FromCatalogItem(item))
	}
}

// @Summary Delete catalog item
// @Description Remove a service or product from the catalog
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) Delete(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
			return
		}

		if err := h.catalogUseCase.DeleteItem(c.Request.Context(), kind, id); err != nil {
			h.writeCatalogError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrInvalidItemKind):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid catalog kind", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
