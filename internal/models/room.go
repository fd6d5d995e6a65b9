package models

import "errors"

// RoomType represents the category of a room
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
	RoomTypeDeluxe RoomType = "deluxe"
)

// RoomStatus represents the current occupancy status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Valid reports whether the room type is one of the known types
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

// Valid reports whether the room status is one of the known statuses
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// Room represents a hotel room
type Room struct {
	ID            int        `json:"id" db:"room_id"`
	RoomNumber    string     `json:"room_number" db:"room_number"`
	RoomType      RoomType   `json:"room_type" db:"room_type"`
	PricePerNight float64    `json:"price_per_night" db:"price_per_night"`
	Status        RoomStatus `json:"status" db:"status"`
	FloorNumber   int        `json:"floor_number" db:"floor_number"`
	MaxOccupancy  int        `json:"max_occupancy" db:"max_occupancy"`
}

// CreateRoomRequest represents the request to add a new room
type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	Status        *string `json:"status,omitempty"`
	FloorNumber   int     `json:"floor_number"`
	MaxOccupancy  int     `json:"max_occupancy" binding:"required,gt=0"`
}

// UpdateRoomStatusRequest represents the request to change a room's status
type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Validate validates the CreateRoomRequest
func (req *CreateRoomRequest) Validate() error {
	if !RoomType(req.RoomType).Valid() {
		return errors.New("invalid room_type: must be single, double, suite, or deluxe")
	}

	if req.PricePerNight <= 0 {
		return errors.New("price_per_night must be greater than 0")
	}

	if req.MaxOccupancy <= 0 {
		return errors.New("max_occupancy must be greater than 0")
	}

	if req.Status != nil && !RoomStatus(*req.Status).Valid() {
		return errors.New("invalid status: must be available, occupied, or maintenance")
	}

	return nil
}

// Validate validates the UpdateRoomStatusRequest
func (req *UpdateRoomStatusRequest) Validate() error {
	if !RoomStatus(req.Status).Valid() {
		return errors.New("invalid status: must be available, occupied, or maintenance")
	}
	return nil
}
