package api

import (
	"net/http"

	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/handler/httperr"
	"suitenest/internal/handler/middleware"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/commands"
	"suitenest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book room
// @Description Save a booking; the stay must not overlap an active booking of the room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingConfirmationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/room/{roomId}/booking [post]
func (h *BookingHandler) BookRoom(c *gin.Context) {
	roomID, ok := parseUUIDParam(c, "roomId", "Invalid room ID format")
	if !ok {
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.BookRoom(c.Request.Context(), roomID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errs.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Sorry, this room is not available for the selected dates",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	code := result.ConfirmationCode.String()
	c.JSON(http.StatusOK, resdto.BookingConfirmationResponse{
		ConfirmationCode: code,
		Message:          "Room booked successfully! Your booking confirmation code is: " + code,
	})
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Router /bookings/all-bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Find booking by confirmation code
// @Tags bookings
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/confirmation/{code} [get]
func (h *BookingHandler) GetByConfirmationCode(c *gin.Context) {
	code := c.Param("code")

	view, err := h.bookingQueries.GetByConfirmationCode(c.Request.Context(), code)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking found with booking code: " + code,
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List a user's bookings
// @Description The path segment is the guest email. Guests may only read their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Guest email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Router /bookings/user/{userId}/bookings [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.bookingQueries.ListByGuestEmail(c.Request.Context(), actor, c.Param("userId"))
	if err != nil {
		if errs.Is(err, queries.ErrBookingAccess) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/booking/{id}/delete [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid booking ID format")
	if !ok {
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, commands.ErrBookingAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
