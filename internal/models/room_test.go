package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequestValidate(t *testing.T) {
	valid := func() CreateRoomRequest {
		return CreateRoomRequest{
			RoomNumber:    "101",
			RoomType:      "double",
			PricePerNight: 150.0,
			FloorNumber:   1,
			MaxOccupancy:  2,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("Valid With Explicit Status", func(t *testing.T) {
		req := valid()
		status := "maintenance"
		req.Status = &status
		assert.NoError(t, req.Validate())
	})

	t.Run("Unknown Room Type", func(t *testing.T) {
		req := valid()
		req.RoomType = "penthouse"
		assert.EqualError(t, req.Validate(), "invalid room_type: must be single, double, suite, or deluxe")
	})

	t.Run("Zero Price", func(t *testing.T) {
		req := valid()
		req.PricePerNight = 0
		assert.EqualError(t, req.Validate(), "price_per_night must be greater than 0")
	})

	t.Run("Zero Occupancy", func(t *testing.T) {
		req := valid()
		req.MaxOccupancy = 0
		assert.EqualError(t, req.Validate(), "max_occupancy must be greater than 0")
	})

	t.Run("Unknown Status", func(t *testing.T) {
		req := valid()
		status := "closed"
		req.Status = &status
		assert.EqualError(t, req.Validate(), "invalid status: must be available, occupied, or maintenance")
	})
}

func TestUpdateRoomStatusRequestValidate(t *testing.T) {
	for _, status := range []string{"available", "occupied", "maintenance"} {
		req := UpdateRoomStatusRequest{Status: status}
		assert.NoError(t, req.Validate())
	}

	req := UpdateRoomStatusRequest{Status: "demolished"}
	assert.Error(t, req.Validate())
}
