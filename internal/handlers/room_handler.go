package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/models"
	"github.com/stayfront/hotel-booking-backend/internal/services"
)

// RoomHandler handles room endpoints
type RoomHandler struct {
	roomService        *services.RoomService
	reservationService *services.ReservationService
	logger             *logrus.Logger
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(
	roomService *services.RoomService,
	reservationService *services.ReservationService,
	logger *logrus.Logger,
) *RoomHandler {
	return &RoomHandler{
		roomService:        roomService,
		reservationService: reservationService,
		logger:             logger,
	}
}

// GetAll lists every room. With ?number= it looks up the single room
// carrying that room number instead.
// GET /api/v1/rooms
// GET /api/v1/rooms?number=101
func (h *RoomHandler) GetAll(c *gin.Context) {
	if number := c.Query("number"); number != "" {
		room, err := h.roomService.GetRoomByNumber(number)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, room)
		return
	}

	rooms, err := h.roomService.GetAllRooms()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "count": len(rooms)})
}

// GetAvailable lists available rooms, optionally filtered by type
// GET /api/v1/rooms/available?type=deluxe
func (h *RoomHandler) GetAvailable(c *gin.Context) {
	rooms, err := h.roomService.GetAvailableRooms(c.Query("type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms, "count": len(rooms)})
}

// GetByID retrieves a room by id
// GET /api/v1/rooms/:id
func (h *RoomHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	room, err := h.roomService.GetRoom(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// CheckAvailability reports whether a room is free for a date range
// GET /api/v1/rooms/:id/availability?check_in=2024-01-10&check_out=2024-01-15
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	result, err := h.reservationService.CheckAvailability(id, c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create adds a new room
// POST /api/v1/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	room, err := h.roomService.AddRoom(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateStatus sets a room's status flag
// PUT /api/v1/rooms/:id/status
func (h *RoomHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var req models.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoomStatus(id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
