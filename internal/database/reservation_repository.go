package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stayfront/hotel-booking-backend/internal/models"
)

// ReservationRepository handles database operations for the
// reservations table, including the transactional booking and
// cancellation write paths that span customers and rooms
type ReservationRepository struct {
	db DB
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationSelect = `
	SELECT r.reservation_id, r.confirmation_code, r.customer_id, r.room_id,
		   r.check_in_date, r.check_out_date, r.total_amount, r.status,
		   r.created_at, r.updated_at,
		   c.first_name || ' ' || c.last_name AS customer_name,
		   rm.room_number
	FROM reservations r
	JOIN customers c ON r.customer_id = c.customer_id
	JOIN rooms rm ON r.room_id = rm.room_id
`

// GetByID retrieves a reservation by id with joined display fields
func (r *ReservationRepository) GetByID(reservationID int) (*models.Reservation, error) {
	query := reservationSelect + ` WHERE r.reservation_id = $1`

	reservation, err := r.scanReservation(r.db.QueryRow(query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation %d: %w", reservationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reservation by id: %w", err)
	}

	return reservation, nil
}

// GetAll retrieves all reservations, newest first
func (r *ReservationRepository) GetAll() ([]models.Reservation, error) {
	query := reservationSelect + ` ORDER BY r.created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByCustomerID retrieves a customer's reservations, soonest check-in first
func (r *ReservationRepository) GetByCustomerID(customerID int) ([]models.Reservation, error) {
	query := reservationSelect + ` WHERE r.customer_id = $1 ORDER BY r.check_in_date`

	rows, err := r.db.Query(query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations by customer: %w", err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetActive retrieves confirmed and checked-in reservations,
// soonest check-in first
func (r *ReservationRepository) GetActive() ([]models.Reservation, error) {
	query := reservationSelect + ` WHERE r.status IN ('confirmed', 'checked_in') ORDER BY r.check_in_date`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active reservations: %w", err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// CountOverlapping counts active reservations for a room whose date
// range overlaps the requested [checkIn, checkOut) interval. Half-open
// semantics: an existing [a, b) overlaps iff a < checkOut AND b > checkIn,
// so back-to-back stays touching at a boundary do not conflict.
func (r *ReservationRepository) CountOverlapping(roomID int, checkIn, checkOut time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE room_id = $1
		  AND status IN ('confirmed', 'checked_in')
		  AND check_in_date < $3
		  AND check_out_date > $2
	`

	var count int
	if err := r.db.QueryRow(query, roomID, checkIn, checkOut).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}

	return count, nil
}

// UpdateStatus sets a reservation's status
func (r *ReservationRepository) UpdateStatus(reservationID int, status models.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE reservation_id = $1`

	result, err := r.db.Exec(query, reservationID, status)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reservation %d: %w", reservationID, ErrNotFound)
	}

	return nil
}

// Book resolves the customer and persists a new reservation in a single
// transaction: look up the customer by email, then by phone, creating a
// new record only if neither matches; insert the reservation; flip the
// room to occupied. The resolved customer is written back into customer
// and the generated ids and timestamps into reservation. Returns whether
// a new customer row was created.
func (r *ReservationRepository) Book(customer *models.Customer, reservation *models.Reservation) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Resolve customer by email, then phone
	created := false
	lookup := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	existing := &models.Customer{}
	err = tx.QueryRow(lookup, customer.Email).Scan(
		&existing.ID, &existing.FirstName, &existing.LastName,
		&existing.Email, &existing.PhoneNumber, &existing.IDProof,
		&existing.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		lookup = `SELECT ` + customerColumns + ` FROM customers WHERE phone_number = $1`
		err = tx.QueryRow(lookup, customer.PhoneNumber).Scan(
			&existing.ID, &existing.FirstName, &existing.LastName,
			&existing.Email, &existing.PhoneNumber, &existing.IDProof,
			&existing.CreatedAt,
		)
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// 2. No match, create a new customer record
		insert := `
			INSERT INTO customers (first_name, last_name, email, phone_number, id_proof)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING customer_id, created_at
		`
		err = tx.QueryRow(
			insert,
			customer.FirstName, customer.LastName, customer.Email,
			customer.PhoneNumber, customer.IDProof,
		).Scan(&customer.ID, &customer.CreatedAt)
		if err != nil {
			return false, fmt.Errorf("failed to create customer: %w", err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to resolve customer: %w", err)
	default:
		*customer = *existing
	}
	reservation.CustomerID = customer.ID

	// 3. Insert the reservation
	insert := `
		INSERT INTO reservations (confirmation_code, customer_id, room_id, check_in_date, check_out_date, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING reservation_id, created_at, updated_at
	`
	err = tx.QueryRow(
		insert,
		reservation.ConfirmationCode, reservation.CustomerID, reservation.RoomID,
		reservation.CheckInDate, reservation.CheckOutDate,
		reservation.TotalAmount, reservation.Status,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to create reservation: %w", err)
	}

	// 4. Mark the room occupied
	if _, err := tx.Exec(`UPDATE rooms SET status = $2 WHERE room_id = $1`,
		reservation.RoomID, models.RoomStatusOccupied); err != nil {
		return false, fmt.Errorf("failed to update room status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit booking: %w", err)
	}

	return created, nil
}

// Cancel soft-cancels a reservation and resets its room to available
// in a single transaction. The row is kept; only the status changes.
func (r *ReservationRepository) Cancel(reservationID, roomID int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE reservations SET status = $2, updated_at = NOW() WHERE reservation_id = $1`,
		reservationID, models.ReservationStatusCancelled,
	); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if _, err := tx.Exec(`UPDATE rooms SET status = $2 WHERE room_id = $1`,
		roomID, models.RoomStatusAvailable); err != nil {
		return fmt.Errorf("failed to reset room status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) scanReservation(row scanner) (*models.Reservation, error) {
	reservation := &models.Reservation{}
	err := row.Scan(
		&reservation.ID, &reservation.ConfirmationCode,
		&reservation.CustomerID, &reservation.RoomID,
		&reservation.CheckInDate, &reservation.CheckOutDate,
		&reservation.TotalAmount, &reservation.Status,
		&reservation.CreatedAt, &reservation.UpdatedAt,
		&reservation.CustomerName, &reservation.RoomNumber,
	)
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (r *ReservationRepository) scanReservations(rows *sql.Rows) ([]models.Reservation, error) {
	reservations := []models.Reservation{}

	for rows.Next() {
		var reservation models.Reservation
		if err := rows.Scan(
			&reservation.ID, &reservation.ConfirmationCode,
			&reservation.CustomerID, &reservation.RoomID,
			&reservation.CheckInDate, &reservation.CheckOutDate,
			&reservation.TotalAmount, &reservation.Status,
			&reservation.CreatedAt, &reservation.UpdatedAt,
			&reservation.CustomerName, &reservation.RoomNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}
