package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/database"
	"github.com/stayfront/hotel-booking-backend/internal/models"
)

// RoomService handles room inventory operations
type RoomService struct {
	roomRepo *database.RoomRepository
	logger   *logrus.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(roomRepo *database.RoomRepository, logger *logrus.Logger) *RoomService {
	return &RoomService{roomRepo: roomRepo, logger: logger}
}

// GetAllRooms lists every room ordered by room number
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	return s.roomRepo.GetAll()
}

// GetAvailableRooms lists rooms whose status flag is available,
// optionally filtered by room type
func (s *RoomService) GetAvailableRooms(roomType string) ([]models.Room, error) {
	if roomType == "" {
		return s.roomRepo.GetAvailable()
	}

	rt := models.RoomType(roomType)
	if !rt.Valid() {
		return nil, NewValidationError("invalid room type: must be single, double, suite, or deluxe")
	}
	return s.roomRepo.GetAvailableByType(rt)
}

// GetRoom retrieves a room by id
func (s *RoomService) GetRoom(roomID int) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: roomID}
		}
		return nil, err
	}
	return room, nil
}

// GetRoomByNumber retrieves a room by its human-readable room number
func (s *RoomService) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	room, err := s.roomRepo.GetByNumber(roomNumber)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: roomNumber}
		}
		return nil, err
	}
	return room, nil
}

// AddRoom creates a new room. Status defaults to available.
func (s *RoomService) AddRoom(req *models.CreateRoomRequest) (*models.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	status := models.RoomStatusAvailable
	if req.Status != nil {
		status = models.RoomStatus(*req.Status)
	}

	room := &models.Room{
		RoomNumber:    req.RoomNumber,
		RoomType:      models.RoomType(req.RoomType),
		PricePerNight: req.PricePerNight,
		Status:        status,
		FloorNumber:   req.FloorNumber,
		MaxOccupancy:  req.MaxOccupancy,
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"room_id":     room.ID,
		"room_number": room.RoomNumber,
		"room_type":   room.RoomType,
	}).Info("Room added")

	return room, nil
}

// UpdateRoomStatus sets a room's status flag. This is the manual
// escape hatch for a status that has drifted from true availability.
func (s *RoomService) UpdateRoomStatus(roomID int, req *models.UpdateRoomStatusRequest) (*models.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: roomID}
		}
		return nil, err
	}

	status := models.RoomStatus(req.Status)
	if err := s.roomRepo.UpdateStatus(room.ID, status); err != nil {
		return nil, err
	}
	room.Status = status

	s.logger.WithFields(logrus.Fields{
		"room_id": room.ID,
		"status":  status,
	}).Info("Room status updated")

	return room, nil
}
