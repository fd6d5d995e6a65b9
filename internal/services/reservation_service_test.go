package services

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfront/hotel-booking-backend/internal/database"
	"github.com/stayfront/hotel-booking-backend/internal/models"
	"github.com/stayfront/hotel-booking-backend/pkg/validator"
)

func newReservationService(t *testing.T) (*ReservationService, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mockDB := newMockDatabase(db)
	service := NewReservationService(
		database.NewReservationRepository(mockDB),
		database.NewRoomRepository(mockDB),
		database.NewCustomerRepository(mockDB),
		validator.NewGuestValidator(),
		logrus.New(),
	)
	// pin the clock so "today" is stable
	service.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	}

	return service, mock, func() { db.Close() }
}

func validRequest() *models.CreateReservationRequest {
	return &models.CreateReservationRequest{
		FirstName:    "Jane",
		LastName:     "Smith",
		Email:        "jane@example.com",
		PhoneNumber:  "9876543210",
		IDProof:      "NIC 556677",
		RoomID:       5,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-13",
	}
}

func TestCreateReservation_Validation(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	cases := []struct {
		mutate  func(*models.CreateReservationRequest)
		message string
		name    string
	}{
		{func(r *models.CreateReservationRequest) { r.FirstName = "  " }, "first name cannot be empty", "Blank First Name"},
		{func(r *models.CreateReservationRequest) { r.LastName = "" }, "last name cannot be empty", "Empty Last Name"},
		{func(r *models.CreateReservationRequest) { r.Email = "janeexample.com" }, "invalid email format", "Email Without At Sign"},
		{func(r *models.CreateReservationRequest) { r.PhoneNumber = "12345" }, "invalid phone number (must be 10 digits)", "Short Phone"},
		{func(r *models.CreateReservationRequest) { r.IDProof = "" }, "id proof cannot be empty", "Empty ID Proof"},
		{func(r *models.CreateReservationRequest) { r.CheckInDate = "10-09-2026" }, "invalid check-in date (expected YYYY-MM-DD)", "Malformed Check-In"},
		{func(r *models.CreateReservationRequest) { r.CheckOutDate = "never" }, "invalid check-out date (expected YYYY-MM-DD)", "Malformed Check-Out"},
		{func(r *models.CreateReservationRequest) { r.CheckOutDate = "2026-09-10" }, "check-out date must be after check-in date", "Zero Night Stay"},
		{func(r *models.CreateReservationRequest) { r.CheckOutDate = "2026-09-08" }, "check-out date must be after check-in date", "Check-Out Before Check-In"},
		{func(r *models.CreateReservationRequest) {
			r.CheckInDate = "2026-08-31"
			r.CheckOutDate = "2026-09-02"
		}, "check-in date cannot be in the past", "Past Check-In"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			result, err := service.CreateReservation(req)
			assert.Nil(t, result)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, validationErr.Message)
		})
	}

	// no queries may run before validation passes
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_CheckInToday(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	req := validRequest()
	req.CheckInDate = "2026-09-01"
	req.CheckOutDate = "2026-09-03"

	expectRoomLookup(mock, 5, "available", 150.0)
	expectOverlapCount(mock, 5, 0)
	expectBookingNewCustomer(mock, 8, 14)

	result, err := service.CreateReservation(req)
	require.NoError(t, err)
	assert.Equal(t, 14, result.ReservationID)
	assert.Equal(t, 2, result.Nights)
	assert.Equal(t, 300.0, result.TotalAmount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_RoomNotFound(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_id`).
		WithArgs(5).
		WillReturnError(sql.ErrNoRows)

	result, err := service.CreateReservation(validRequest())
	assert.Nil(t, result)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "room", notFoundErr.Resource)
	assert.Equal(t, 5, notFoundErr.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_RoomNotAvailable(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	expectRoomLookup(mock, 5, "maintenance", 150.0)

	result, err := service.CreateReservation(validRequest())
	assert.Nil(t, result)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "room is not available", conflictErr.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_DatesAlreadyBooked(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	expectRoomLookup(mock, 5, "available", 150.0)
	expectOverlapCount(mock, 5, 1)

	result, err := service.CreateReservation(validRequest())
	assert.Nil(t, result)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "room is already booked for the selected dates", conflictErr.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservation_Success(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	t.Run("New Customer", func(t *testing.T) {
		expectRoomLookup(mock, 5, "available", 150.0)
		expectOverlapCount(mock, 5, 0)
		expectBookingNewCustomer(mock, 8, 14)

		result, err := service.CreateReservation(validRequest())
		require.NoError(t, err)
		assert.Equal(t, 14, result.ReservationID)
		assert.NotEmpty(t, result.ConfirmationCode)
		assert.Equal(t, 8, result.CustomerID)
		assert.True(t, result.NewCustomer)
		assert.Equal(t, "101", result.RoomNumber)
		assert.Equal(t, 3, result.Nights)
		assert.Equal(t, 450.0, result.TotalAmount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Existing Customer", func(t *testing.T) {
		now := time.Now()

		expectRoomLookup(mock, 5, "available", 150.0)
		expectOverlapCount(mock, 5, 0)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE email`).
			WithArgs("jane@example.com").
			WillReturnRows(customerRows().
				AddRow(3, "Jane", "Smith", "jane@example.com", "9876543210", "NIC 556677", now))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WithArgs(sqlmock.AnyArg(), 3, 5, sqlmock.AnyArg(), sqlmock.AnyArg(), 450.0, models.ReservationStatusConfirmed).
			WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "created_at", "updated_at"}).
				AddRow(15, now, now))
		mock.ExpectExec(`UPDATE rooms SET status`).
			WithArgs(5, models.RoomStatusOccupied).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := service.CreateReservation(validRequest())
		require.NoError(t, err)
		assert.Equal(t, 15, result.ReservationID)
		assert.Equal(t, 3, result.CustomerID)
		assert.False(t, result.NewCustomer)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Phone With Separators", func(t *testing.T) {
		req := validRequest()
		req.Email = "fresh@example.com"
		req.PhoneNumber = "987-654-3210"

		expectRoomLookup(mock, 5, "available", 150.0)
		expectOverlapCount(mock, 5, 0)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE email`).
			WithArgs("fresh@example.com").
			WillReturnError(sql.ErrNoRows)
		// lookup runs on the sanitized number
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE phone_number`).
			WithArgs("9876543210").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`INSERT INTO customers`).
			WithArgs("Jane", "Smith", "fresh@example.com", "9876543210", "NIC 556677").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id", "created_at"}).AddRow(9, time.Now()))
		mock.ExpectQuery(`INSERT INTO reservations`).
			WithArgs(sqlmock.AnyArg(), 9, 5, sqlmock.AnyArg(), sqlmock.AnyArg(), 450.0, models.ReservationStatusConfirmed).
			WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "created_at", "updated_at"}).
				AddRow(16, time.Now(), time.Now()))
		mock.ExpectExec(`UPDATE rooms SET status`).
			WithArgs(5, models.RoomStatusOccupied).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := service.CreateReservation(req)
		require.NoError(t, err)
		assert.Equal(t, 16, result.ReservationID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelReservation(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	t.Run("Success", func(t *testing.T) {
		expectReservationLookup(mock, 12, 5, "confirmed")

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE reservations SET status`).
			WithArgs(12, models.ReservationStatusCancelled).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE rooms SET status`).
			WithArgs(5, models.RoomStatusAvailable).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		reservation, err := service.CancelReservation(12)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationStatusCancelled, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		expectReservationLookup(mock, 12, 5, "cancelled")

		reservation, err := service.CancelReservation(12)
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Checked Out", func(t *testing.T) {
		expectReservationLookup(mock, 12, 5, "checked_out")

		reservation, err := service.CancelReservation(12)
		assert.Nil(t, reservation)
		assert.ErrorIs(t, err, ErrCannotCancelCompleted)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM reservations r (.+) WHERE r.reservation_id`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		reservation, err := service.CancelReservation(99)
		assert.Nil(t, reservation)

		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "reservation", notFoundErr.Resource)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	t.Run("Check In", func(t *testing.T) {
		expectReservationLookup(mock, 12, 5, "confirmed")

		mock.ExpectExec(`UPDATE reservations SET status`).
			WithArgs(12, models.ReservationStatusCheckedIn).
			WillReturnResult(sqlmock.NewResult(0, 1))

		reservation, err := service.UpdateReservationStatus(12, "checked_in")
		require.NoError(t, err)
		assert.Equal(t, models.ReservationStatusCheckedIn, reservation.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid Target Status", func(t *testing.T) {
		reservation, err := service.UpdateReservationStatus(12, "cancelled")
		assert.Nil(t, reservation)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("Cancelled Is Terminal", func(t *testing.T) {
		expectReservationLookup(mock, 12, 5, "cancelled")

		reservation, err := service.UpdateReservationStatus(12, "checked_in")
		assert.Nil(t, reservation)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCheckAvailability(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	t.Run("Available", func(t *testing.T) {
		expectRoomLookup(mock, 5, "occupied", 150.0)
		expectOverlapCount(mock, 5, 0)

		result, err := service.CheckAvailability(5, "2026-09-10", "2026-09-13")
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, "2026-09-10", result.CheckInDate)
		assert.Equal(t, "2026-09-13", result.CheckOutDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booked", func(t *testing.T) {
		expectRoomLookup(mock, 5, "available", 150.0)
		expectOverlapCount(mock, 5, 1)

		result, err := service.CheckAvailability(5, "2026-09-10", "2026-09-13")
		require.NoError(t, err)
		assert.False(t, result.Available)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bad Date Order", func(t *testing.T) {
		result, err := service.CheckAvailability(5, "2026-09-13", "2026-09-10")
		assert.Nil(t, result)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestGetReservationsByCustomer(t *testing.T) {
	service, mock, cleanup := newReservationService(t)
	defer cleanup()

	t.Run("Customer Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE customer_id`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		reservations, err := service.GetReservationsByCustomer(99)
		assert.Nil(t, reservations)

		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "customer", notFoundErr.Resource)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM customers WHERE customer_id`).
			WithArgs(3).
			WillReturnRows(customerRows().
				AddRow(3, "Jane", "Smith", "jane@example.com", "9876543210", "NIC 556677", now))
		mock.ExpectQuery(`SELECT (.+) FROM reservations r (.+) WHERE r.customer_id`).
			WithArgs(3).
			WillReturnRows(reservationRows().
				AddRow(12, uuid.New().String(), 3, 5, checkIn, checkIn.AddDate(0, 0, 3), 450.0, "confirmed", now, now, "Jane Smith", "101"))

		reservations, err := service.GetReservationsByCustomer(3)
		require.NoError(t, err)
		assert.Len(t, reservations, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func expectRoomLookup(mock sqlmock.Sqlmock, roomID int, status string, price float64) {
	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE room_id`).
		WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows([]string{
			"room_id", "room_number", "room_type", "price_per_night",
			"status", "floor_number", "max_occupancy",
		}).AddRow(roomID, "101", "double", price, status, 1, 2))
}

func expectOverlapCount(mock sqlmock.Sqlmock, roomID, count int) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).
		WithArgs(roomID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func expectBookingNewCustomer(mock sqlmock.Sqlmock, customerID, reservationID int) {
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE email`).
		WithArgs("jane@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE phone_number`).
		WithArgs("9876543210").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Jane", "Smith", "jane@example.com", "9876543210", "NIC 556677").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "created_at"}).AddRow(customerID, now))
	mock.ExpectQuery(`INSERT INTO reservations`).
		WithArgs(sqlmock.AnyArg(), customerID, 5, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), models.ReservationStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"reservation_id", "created_at", "updated_at"}).
			AddRow(reservationID, now, now))
	mock.ExpectExec(`UPDATE rooms SET status`).
		WithArgs(5, models.RoomStatusOccupied).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func expectReservationLookup(mock sqlmock.Sqlmock, reservationID, roomID int, status string) {
	now := time.Now()
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM reservations r (.+) WHERE r.reservation_id`).
		WithArgs(reservationID).
		WillReturnRows(reservationRows().
			AddRow(reservationID, uuid.New().String(), 3, roomID, checkIn, checkIn.AddDate(0, 0, 3), 450.0, status, now, now, "Jane Smith", "101"))
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"customer_id", "first_name", "last_name", "email",
		"phone_number", "id_proof", "created_at",
	})
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"reservation_id", "confirmation_code", "customer_id", "room_id",
		"check_in_date", "check_out_date", "total_amount", "status",
		"created_at", "updated_at", "customer_name", "room_number",
	})
}

// Mock database implementation for testing
type mockDatabase struct {
	db *sqlx.DB
}

func newMockDatabase(db *sql.DB) *mockDatabase {
	return &mockDatabase{db: sqlx.NewDb(db, "sqlmock")}
}

func (m *mockDatabase) Get(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Get not implemented in mock")
}

func (m *mockDatabase) Select(dest interface{}, query string, args ...interface{}) error {
	return fmt.Errorf("Select not implemented in mock")
}

func (m *mockDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *mockDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *mockDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *mockDatabase) Beginx() (*sqlx.Tx, error) {
	return m.db.Beginx()
}

func (m *mockDatabase) Close() error {
	return m.db.Close()
}

func (m *mockDatabase) Ping() error {
	return m.db.Ping()
}
