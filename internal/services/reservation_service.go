package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/database"
	"github.com/stayfront/hotel-booking-backend/internal/models"
	"github.com/stayfront/hotel-booking-backend/pkg/validator"
)

// ReservationService orchestrates the reservation lifecycle:
// validation, availability checking, customer resolution, pricing,
// persistence, and cancellation
type ReservationService struct {
	reservationRepo *database.ReservationRepository
	roomRepo        *database.RoomRepository
	customerRepo    *database.CustomerRepository
	validator       *validator.GuestValidator
	logger          *logrus.Logger

	// now is swapped out in tests to pin "today"
	now func() time.Time
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo *database.ReservationRepository,
	roomRepo *database.RoomRepository,
	customerRepo *database.CustomerRepository,
	guestValidator *validator.GuestValidator,
	logger *logrus.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		customerRepo:    customerRepo,
		validator:       guestValidator,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateReservation books a room for a guest. Validation, the room
// gate, and the availability check short-circuit in order; customer
// resolution, reservation insert, and the room status flip then run
// in a single transaction.
func (s *ReservationService) CreateReservation(req *models.CreateReservationRequest) (*models.CreateReservationResult, error) {
	// 1. Names must be non-empty after trim
	firstName, err := s.validator.ValidateName(req.FirstName)
	if err != nil {
		return nil, NewValidationError("first name cannot be empty")
	}
	lastName, err := s.validator.ValidateName(req.LastName)
	if err != nil {
		return nil, NewValidationError("last name cannot be empty")
	}

	// 2. Email must match local-part@domain
	email, err := s.validator.ValidateEmail(req.Email)
	if err != nil {
		return nil, NewValidationError("invalid email format")
	}

	// 3. Phone must be exactly 10 digits
	phone, err := s.validator.ValidatePhone(req.PhoneNumber)
	if err != nil {
		return nil, NewValidationError("invalid phone number (must be 10 digits)")
	}

	idProof, err := s.validator.ValidateIDProof(req.IDProof)
	if err != nil {
		return nil, NewValidationError("id proof cannot be empty")
	}

	// 4. Check-out must be strictly after check-in
	checkIn, err := s.validator.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, NewValidationError("invalid check-in date (expected YYYY-MM-DD)")
	}
	checkOut, err := s.validator.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, NewValidationError("invalid check-out date (expected YYYY-MM-DD)")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check-out date must be after check-in date")
	}

	// 5. Check-in may not be in the past; today is allowed
	if checkIn.Before(s.today()) {
		return nil, NewValidationError("check-in date cannot be in the past")
	}

	// 6. Room must exist
	room, err := s.roomRepo.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: req.RoomID}
		}
		return nil, err
	}

	// 7. Coarse room gate: the stored status flag must be available
	if room.Status != models.RoomStatusAvailable {
		return nil, &ConflictError{Message: "room is not available"}
	}

	// 8. No active reservation may overlap the requested dates
	overlapping, err := s.reservationRepo.CountOverlapping(room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, &ConflictError{Message: "room is already booked for the selected dates"}
	}

	// 9-12. Resolve customer, price, persist, flip room status; one transaction
	nights := models.Nights(checkIn, checkOut)
	customer := &models.Customer{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		IDProof:     idProof,
	}
	reservation := &models.Reservation{
		ConfirmationCode: uuid.New().String(),
		RoomID:           room.ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		TotalAmount:      float64(nights) * room.PricePerNight,
		Status:           models.ReservationStatusConfirmed,
	}

	newCustomer, err := s.reservationRepo.Book(customer, reservation)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"customer_id":    customer.ID,
		"customer_name":  customer.FullName(),
		"new_customer":   newCustomer,
		"room_number":    room.RoomNumber,
		"nights":         nights,
		"total_amount":   reservation.TotalAmount,
	}).Info("Reservation created")

	return &models.CreateReservationResult{
		ReservationID:    reservation.ID,
		ConfirmationCode: reservation.ConfirmationCode,
		CustomerID:       customer.ID,
		NewCustomer:      newCustomer,
		RoomNumber:       room.RoomNumber,
		Nights:           nights,
		TotalAmount:      reservation.TotalAmount,
	}, nil
}

// CancelReservation soft-cancels a reservation and frees its room.
// Already-cancelled and checked-out reservations are rejected without
// mutation.
func (s *ReservationService) CancelReservation(reservationID int) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: reservationID}
		}
		return nil, err
	}

	// only active reservations can be cancelled
	if !reservation.Status.Active() {
		if reservation.Status == models.ReservationStatusCancelled {
			return nil, ErrAlreadyCancelled
		}
		return nil, ErrCannotCancelCompleted
	}

	if err := s.reservationRepo.Cancel(reservation.ID, reservation.RoomID); err != nil {
		return nil, err
	}
	reservation.Status = models.ReservationStatusCancelled

	s.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"room_number":    reservation.RoomNumber,
	}).Info("Reservation cancelled")

	return reservation, nil
}

// UpdateReservationStatus moves a reservation through check-in and
// check-out. Cancellation has its own operation; cancelled
// reservations are terminal.
func (s *ReservationService) UpdateReservationStatus(reservationID int, status string) (*models.Reservation, error) {
	target := models.ReservationStatus(status)
	if target != models.ReservationStatusCheckedIn && target != models.ReservationStatusCheckedOut {
		return nil, NewValidationError("status must be checked_in or checked_out")
	}

	reservation, err := s.reservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: reservationID}
		}
		return nil, err
	}

	if reservation.Status == models.ReservationStatusCancelled {
		return nil, &ConflictError{Message: "reservation is cancelled"}
	}

	if err := s.reservationRepo.UpdateStatus(reservation.ID, target); err != nil {
		return nil, err
	}
	reservation.Status = target

	s.logger.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"status":         target,
	}).Info("Reservation status updated")

	return reservation, nil
}

// CheckAvailability reports whether a room is free of active
// reservations over the requested [checkIn, checkOut) interval.
// Read-only; the stored room status flag is not consulted.
func (s *ReservationService) CheckAvailability(roomID int, checkInDate, checkOutDate string) (*models.AvailabilityResult, error) {
	checkIn, err := s.validator.ParseDate(checkInDate)
	if err != nil {
		return nil, NewValidationError("invalid check-in date (expected YYYY-MM-DD)")
	}
	checkOut, err := s.validator.ParseDate(checkOutDate)
	if err != nil {
		return nil, NewValidationError("invalid check-out date (expected YYYY-MM-DD)")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check-out date must be after check-in date")
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: roomID}
		}
		return nil, err
	}

	overlapping, err := s.reservationRepo.CountOverlapping(roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &models.AvailabilityResult{
		RoomID:       roomID,
		CheckInDate:  checkIn.Format(validator.DateLayout),
		CheckOutDate: checkOut.Format(validator.DateLayout),
		Available:    overlapping == 0,
	}, nil
}

// GetReservation retrieves a reservation with its display fields
func (s *ReservationService) GetReservation(reservationID int) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(reservationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: reservationID}
		}
		return nil, err
	}
	return reservation, nil
}

// GetAllReservations lists every reservation, newest first
func (s *ReservationService) GetAllReservations() ([]models.Reservation, error) {
	return s.reservationRepo.GetAll()
}

// GetActiveReservations lists confirmed and checked-in reservations,
// soonest check-in first
func (s *ReservationService) GetActiveReservations() ([]models.Reservation, error) {
	return s.reservationRepo.GetActive()
}

// GetReservationsByCustomer lists a customer's reservations,
// soonest check-in first
func (s *ReservationService) GetReservationsByCustomer(customerID int) ([]models.Reservation, error) {
	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}
	return s.reservationRepo.GetByCustomerID(customerID)
}

// today returns the current calendar date at UTC midnight, matching
// the normalization applied to parsed check-in dates
func (s *ReservationService) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
