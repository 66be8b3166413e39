package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "glisten-lounge/internal/handler/dto/response"
	"glisten-lounge/internal/handler/httperr"
	"glisten-lounge/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Time slots for a date
// @Description Half-hourly walk-in slots for one date; past slots on the current business day are unavailable
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	rm, err := h.availabilityUseCase.SlotsFor(c.Query("date"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(rm))
}

// @Summary Booking calendar month
// @Description Month grid with selectable cells; months fully in the past are rejected
// @Tags availability
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /availability/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errY, errM), "Invalid year or month", nil)
		return
	}

	view, err := h.availabilityUseCase.Calendar(year, month)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidMonth):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		case errors.Is(err, usecase.ErrMonthInPast):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Month is entirely in the past", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}
