package models

import "time"

// Customer represents a hotel guest on record
type Customer struct {
	ID          int       `json:"id" db:"customer_id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	IDProof     string    `json:"id_proof" db:"id_proof"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// UpdateCustomerRequest represents the request to update customer details.
// All fields are optional; omitted fields keep their current value.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IDProof     *string `json:"id_proof,omitempty"`
}
