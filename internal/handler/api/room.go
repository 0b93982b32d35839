package api

import (
	"net/http"

	reqdto "suitenest/internal/handler/dto/request"
	resdto "suitenest/internal/handler/dto/response"
	"suitenest/internal/handler/httperr"
	"suitenest/internal/pkg/config"
	"suitenest/internal/pkg/errs"
	"suitenest/internal/usecase/commands"
	"suitenest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands  commands.RoomCommands
	roomQueries   queries.RoomQueries
	maxPhotoBytes int64
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries, cfg config.Config) *RoomHandler {
	return &RoomHandler{
		roomCommands:  roomCommands,
		roomQueries:   roomQueries,
		maxPhotoBytes: cfg.Booking.MaxPhotoBytes,
	}
}

// @Summary Add room
// @Description Create a room from a multipart form
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param roomType formData string true "Room type"
// @Param roomPrice formData string true "Price per night"
// @Param photo formData file false "Room photo"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /rooms/add/new-room [post]
func (h *RoomHandler) AddRoom(c *gin.Context) {
	in, ok := h.bindRoomForm(c)
	if !ok {
		return
	}

	view, err := h.roomCommands.AddRoom(c.Request.Context(), in)
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Update a room; omitted fields keep their current value
// @Tags rooms
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param roomType formData string false "Room type"
// @Param roomPrice formData string false "Price per night"
// @Param photo formData file false "Room photo"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/update/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	in, ok := h.bindRoomForm(c)
	if !ok {
		return
	}

	view, err := h.roomCommands.UpdateRoom(c.Request.Context(), id, in)
	if err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Delete a room and its bookings
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /rooms/delete/room/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	if err := h.roomCommands.DeleteRoom(c.Request.Context(), id); err != nil {
		h.writeRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/all-rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/room/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "Invalid room ID format")
	if !ok {
		return
	}

	view, err := h.roomQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List room types
// @Tags rooms
// @Produce json
// @Success 200 {array} string
// @Router /rooms/room/types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, types)
}

// @Summary Search available rooms
// @Description Rooms with no active booking overlapping the stay
// @Tags rooms
// @Produce json
// @Param checkInDate query string true "YYYY-MM-DD"
// @Param checkOutDate query string true "YYYY-MM-DD"
// @Param roomType query string false "Room type"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available-rooms [get]
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	var q reqdto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "checkInDate and checkOutDate are required",
		})
		return
	}

	views, err := h.roomQueries.ListAvailableRooms(c.Request.Context(), queries.AvailabilityParams{
		CheckIn:  q.CheckInDate,
		CheckOut: q.CheckOutDate,
		RoomType: q.RoomType,
	})
	if err != nil {
		if errs.Is(err, queries.ErrInvalidSearchDates) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func (h *RoomHandler) bindRoomForm(c *gin.Context) (reqdto.RoomInput, bool) {
	var form reqdto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return reqdto.RoomInput{}, false
	}

	in, err := form.ToInput(h.maxPhotoBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return reqdto.RoomInput{}, false
	}
	return in, true
}

func (h *RoomHandler) writeRoomError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseUUIDParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": msg,
		})
		return uuid.Nil, false
	}
	return id, true
}
