package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/database"
	"github.com/stayfront/hotel-booking-backend/internal/models"
	"github.com/stayfront/hotel-booking-backend/pkg/validator"
)

// CustomerService handles administrative customer operations. The
// reservation lifecycle creates customers itself; it never deletes them.
type CustomerService struct {
	customerRepo *database.CustomerRepository
	validator    *validator.GuestValidator
	logger       *logrus.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo *database.CustomerRepository,
	guestValidator *validator.GuestValidator,
	logger *logrus.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		validator:    guestValidator,
		logger:       logger,
	}
}

// GetAllCustomers lists every customer, newest first
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

// GetCustomer retrieves a customer by id
func (s *CustomerService) GetCustomer(customerID int) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}
	return customer, nil
}

// GetCustomerByEmail retrieves a customer by email address
func (s *CustomerService) GetCustomerByEmail(email string) (*models.Customer, error) {
	email, err := s.validator.ValidateEmail(email)
	if err != nil {
		return nil, NewValidationError("invalid email format")
	}

	customer, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: email}
		}
		return nil, err
	}
	return customer, nil
}

// GetCustomerByPhone retrieves a customer by phone number. The input
// is sanitized the same way booking sanitizes it, so separators are
// accepted.
func (s *CustomerService) GetCustomerByPhone(phoneNumber string) (*models.Customer, error) {
	phone, err := s.validator.ValidatePhone(phoneNumber)
	if err != nil {
		return nil, NewValidationError("invalid phone number (must be 10 digits)")
	}

	customer, err := s.customerRepo.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: phone}
		}
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer applies the provided fields to an existing customer
func (s *CustomerService) UpdateCustomer(customerID int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}

	if req.FirstName != nil {
		name, err := s.validator.ValidateName(*req.FirstName)
		if err != nil {
			return nil, NewValidationError("first name cannot be empty")
		}
		customer.FirstName = name
	}
	if req.LastName != nil {
		name, err := s.validator.ValidateName(*req.LastName)
		if err != nil {
			return nil, NewValidationError("last name cannot be empty")
		}
		customer.LastName = name
	}
	if req.Email != nil {
		email, err := s.validator.ValidateEmail(*req.Email)
		if err != nil {
			return nil, NewValidationError("invalid email format")
		}
		customer.Email = email
	}
	if req.PhoneNumber != nil {
		phone, err := s.validator.ValidatePhone(*req.PhoneNumber)
		if err != nil {
			return nil, NewValidationError("invalid phone number (must be 10 digits)")
		}
		customer.PhoneNumber = phone
	}
	if req.IDProof != nil {
		idProof, err := s.validator.ValidateIDProof(*req.IDProof)
		if err != nil {
			return nil, NewValidationError("id proof cannot be empty")
		}
		customer.IDProof = idProof
	}

	if err := s.customerRepo.Update(customer); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &NotFoundError{Resource: "customer", ID: customerID}
		}
		return nil, err
	}

	s.logger.WithField("customer_id", customer.ID).Info("Customer updated")

	return customer, nil
}

// DeleteCustomer removes a customer record (administrative operation)
func (s *CustomerService) DeleteCustomer(customerID int) error {
	if err := s.customerRepo.Delete(customerID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{Resource: "customer", ID: customerID}
		}
		return err
	}

	s.logger.WithField("customer_id", customerID).Info("Customer deleted")

	return nil
}
