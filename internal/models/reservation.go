package models

import "time"

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// Valid reports whether the status is one of the known statuses
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}

// Active reports whether the reservation counts against room
// availability (confirmed or checked-in)
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusCheckedIn
}

// Reservation represents a booking of a room for a date range.
// The stay is a half-open interval [CheckInDate, CheckOutDate):
// the check-out day itself is not occupied, so back-to-back stays
// touching at the boundary do not conflict.
type Reservation struct {
	ID               int               `json:"id" db:"reservation_id"`
	ConfirmationCode string            `json:"confirmation_code" db:"confirmation_code"`
	CustomerID       int               `json:"customer_id" db:"customer_id"`
	RoomID           int               `json:"room_id" db:"room_id"`
	CheckInDate      time.Time         `json:"check_in_date" db:"check_in_date"`
	CheckOutDate     time.Time         `json:"check_out_date" db:"check_out_date"`
	TotalAmount      float64           `json:"total_amount" db:"total_amount"`
	Status           ReservationStatus `json:"status" db:"status"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`

	// Display fields populated on read via join, never persisted
	CustomerName string `json:"customer_name,omitempty" db:"customer_name"`
	RoomNumber   string `json:"room_number,omitempty" db:"room_number"`
}

// Nights returns the billing unit count for a stay: the calendar-day
// difference between check-in and check-out
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CreateReservationRequest represents the request to book a room.
// Dates are YYYY-MM-DD strings as received from the operator.
type CreateReservationRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	IDProof      string `json:"id_proof" binding:"required"`
	RoomID       int    `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

// UpdateReservationStatusRequest represents the request to move a
// reservation through check-in / check-out
type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateReservationResult is the success payload of a booking
type CreateReservationResult struct {
	ReservationID    int     `json:"reservation_id"`
	ConfirmationCode string  `json:"confirmation_code"`
	CustomerID       int     `json:"customer_id"`
	NewCustomer      bool    `json:"new_customer"`
	RoomNumber       string  `json:"room_number"`
	Nights           int     `json:"nights"`
	TotalAmount      float64 `json:"total_amount"`
}

// AvailabilityResult is the payload of an availability check
type AvailabilityResult struct {
	RoomID       int    `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}
