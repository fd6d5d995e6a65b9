package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/stayfront/hotel-booking-backend/internal/models"
)

// scanner abstracts over *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// CustomerRepository handles database operations for the customers table
type CustomerRepository struct {
	db DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `customer_id, first_name, last_name, email, phone_number, id_proof, created_at`

// Create inserts a new customer and fills in the generated id and timestamp
func (r *CustomerRepository) Create(customer *models.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone_number, id_proof)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING customer_id, created_at
	`

	err := r.db.QueryRow(
		query,
		customer.FirstName, customer.LastName, customer.Email,
		customer.PhoneNumber, customer.IDProof,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by id
func (r *CustomerRepository) GetByID(customerID int) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`

	customer, err := r.scanCustomer(r.db.QueryRow(query, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}

	return customer, nil
}

// GetByEmail retrieves a customer by email address
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := r.scanCustomer(r.db.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return customer, nil
}

// GetByPhone retrieves a customer by phone number
func (r *CustomerRepository) GetByPhone(phoneNumber string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone_number = $1`

	customer, err := r.scanCustomer(r.db.QueryRow(query, phoneNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer by phone: %w", err)
	}

	return customer, nil
}

// GetAll retrieves all customers, newest first
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID, &customer.FirstName, &customer.LastName,
			&customer.Email, &customer.PhoneNumber, &customer.IDProof,
			&customer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// Update replaces a customer's details
func (r *CustomerRepository) Update(customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5, id_proof = $6
		WHERE customer_id = $1
	`

	result, err := r.db.Exec(
		query,
		customer.ID, customer.FirstName, customer.LastName,
		customer.Email, customer.PhoneNumber, customer.IDProof,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, ErrNotFound)
	}

	return nil
}

// Delete removes a customer row. Administrative operation; the
// reservation lifecycle never deletes customers.
func (r *CustomerRepository) Delete(customerID int) error {
	result, err := r.db.Exec(`DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
	}

	return nil
}

func (r *CustomerRepository) scanCustomer(row scanner) (*models.Customer, error) {
	customer := &models.Customer{}
	err := row.Scan(
		&customer.ID, &customer.FirstName, &customer.LastName,
		&customer.Email, &customer.PhoneNumber, &customer.IDProof,
		&customer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return customer, nil
}
