package api

import (
	"errors"
	"net/http"

	reqdto "glisten-lounge/internal/handler/dto/request"
	resdto "glisten-lounge/internal/handler/dto/response"
	"glisten-lounge/internal/handler/httperr"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/cookie"
	"glisten-lounge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BagHandler struct {
	bagUseCase usecase.BagUseCase
	bagCfg     config.BagConfig
}

func NewBagHandler(bagUseCase usecase.BagUseCase, bagCfg config.BagConfig) *BagHandler {
	return &BagHandler{
		bagUseCase: bagUseCase,
		bagCfg:     bagCfg,
	}
}

// @Summary Get bag
// @Description Get the visitor's current bag contents and running total
// @Tags bag
// @Produce json
// @Success 200 {object} resdto.BagResponse
// @Router /bag [get]
func (h *BagHandler) Get(c *gin.Context) {
	sessionID := cookie.EnsureBagSession(c, h.bagCfg)

	rm, err := h.bagUseCase.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.writeBagError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBag(rm))
}

// @Summary Add item to bag
// @Description Snapshot a catalog item into the bag; adding a duplicate is a no-op
// @Tags bag
// @Accept json
// @Produce json
// @Param request body reqdto.AddBagItemRequest true "Item reference"
// @Success 200 {object} resdto.BagResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bag/items [post]
func (h *BagHandler) AddItem(c *gin.Context) {
	sessionID := cookie.EnsureBagSession(c, h.bagCfg)

	var req reqdto.AddBagItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
		return
	}

	rm, err := h.bagUseCase.AddItem(c.Request.Context(), sessionID, req.Kind, itemID)
	if err != nil {
		h.writeBagError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBag(rm))
}

// @Summary Remove item from bag
// @Description Remove one item by ID; removing an absent item is a no-op
// @Tags bag
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.BagResponse
// @Router /bag/items/{id} [delete]
func (h *BagHandler) RemoveItem(c *gin.Context) {
	sessionID := cookie.EnsureBagSession(c, h.bagCfg)

	rm, err := h.bagUseCase.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.writeBagError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBag(rm))
}

// @Summary Clear bag
// @Description Empty the visitor's bag
// @Tags bag
// @Success 204 "No Content"
// @Router /bag [delete]
func (h *BagHandler) Clear(c *gin.Context) {
	sessionID := cookie.EnsureBagSession(c, h.bagCfg)

	if err := h.bagUseCase.Clear(c.Request.Context(), sessionID); err != nil {
		h.writeBagError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BagHandler) writeBagError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, usecase.ErrInvalidItemKind):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid catalog kind", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
