package api

import (
	"errors"
	"net/http"

	"glisten-lounge/internal/domain/booking"
	reqdto "glisten-lounge/internal/handler/dto/request"
	resdto "glisten-lounge/internal/handler/dto/response"
	"glisten-lounge/internal/handler/httperr"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/cookie"
	"glisten-lounge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	bagCfg         config.BagConfig
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, bagCfg config.BagConfig) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bagCfg:         bagCfg,
	}
}

// @Summary Submit booking
// @Description Submit the visitor's bag plus contact details as a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Booking form"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	sessionID := cookie.EnsureBagSession(c, h.bagCfg)

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.bookingUseCase.Submit(c.Request.Context(), sessionID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrEmptyBag):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Your bag is empty", nil)
		case errors.Is(err, booking.ErrMissingName),
			errors.Is(err, booking.ErrMissingPhone),
			errors.Is(err, booking.ErrMissingDate),
			errors.Is(err, booking.ErrMissingTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, booking.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date", nil)
		case errors.Is(err, booking.ErrInvalidTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Time slot outside business hours", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(rm))
}

// @Summary List bookings
// @Description List all booking requests, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	rms, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(rms))
}

// @Summary Get booking
// @Description Get one booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	rm, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(rm))
}

// @Summary Update booking status
// @Description Advance a booking along pending, confirmed, completed
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidTransition) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
			return
		}
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(rm))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
