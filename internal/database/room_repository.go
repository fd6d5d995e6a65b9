package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/stayfront/hotel-booking-backend/internal/models"
)

// RoomRepository handles database operations for the rooms table
type RoomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `room_id, room_number, room_type, price_per_night, status, floor_number, max_occupancy`

// Create inserts a new room and fills in the generated id
func (r *RoomRepository) Create(room *models.Room) error {
	query := `
		INSERT INTO rooms (room_number, room_type, price_per_night, status, floor_number, max_occupancy)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING room_id
	`

	err := r.db.QueryRow(
		query,
		room.RoomNumber, room.RoomType, room.PricePerNight,
		room.Status, room.FloorNumber, room.MaxOccupancy,
	).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by id
func (r *RoomRepository) GetByID(roomID int) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1`

	room, err := r.scanRoom(r.db.QueryRow(query, roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("room %d: %w", roomID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

// GetByNumber retrieves a room by its human-readable room number
func (r *RoomRepository) GetByNumber(roomNumber string) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	room, err := r.scanRoom(r.db.QueryRow(query, roomNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("room %s: %w", roomNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room by number: %w", err)
	}

	return room, nil
}

// GetAll retrieves all rooms ordered by room number
func (r *RoomRepository) GetAll() ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetAvailable retrieves rooms whose status flag is available,
// ordered by room number
func (r *RoomRepository) GetAvailable() ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = 'available' ORDER BY room_number`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetAvailableByType retrieves available rooms of a given type,
// ordered by room number
func (r *RoomRepository) GetAvailableByType(roomType models.RoomType) ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = 'available' AND room_type = $1 ORDER BY room_number`

	rows, err := r.db.Query(query, roomType)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rooms by type: %w", err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// UpdateStatus sets a room's status flag
func (r *RoomRepository) UpdateStatus(roomID int, status models.RoomStatus) error {
	result, err := r.db.Exec(`UPDATE rooms SET status = $2 WHERE room_id = $1`, roomID, status)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("room %d: %w", roomID, ErrNotFound)
	}

	return nil
}

func (r *RoomRepository) scanRoom(row scanner) (*models.Room, error) {
	room := &models.Room{}
	err := row.Scan(
		&room.ID, &room.RoomNumber, &room.RoomType, &room.PricePerNight,
		&room.Status, &room.FloorNumber, &room.MaxOccupancy,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *RoomRepository) scanRooms(rows *sql.Rows) ([]models.Room, error) {
	rooms := []models.Room{}

	for rows.Next() {
		var room models.Room
		if err := rows.Scan(
			&room.ID, &room.RoomNumber, &room.RoomType, &room.PricePerNight,
			&room.Status, &room.FloorNumber, &room.MaxOccupancy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}

	return rooms, nil
}
