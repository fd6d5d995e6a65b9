package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/models"
	"github.com/stayfront/hotel-booking-backend/internal/services"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService    *services.CustomerService
	reservationService *services.ReservationService
	logger             *logrus.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(
	customerService *services.CustomerService,
	reservationService *services.ReservationService,
	logger *logrus.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customerService:    customerService,
		reservationService: reservationService,
		logger:             logger,
	}
}

// GetAll lists every customer, newest first. With ?email= or ?phone=
// it looks up the single matching customer instead.
// GET /api/v1/customers
// GET /api/v1/customers?email=jane@example.com
// GET /api/v1/customers?phone=9876543210
func (h *CustomerHandler) GetAll(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		customer, err := h.customerService.GetCustomerByEmail(email)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, customer)
		return
	}

	if phone := c.Query("phone"); phone != "" {
		customer, err := h.customerService.GetCustomerByPhone(phone)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, customer)
		return
	}

	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

// GetByID retrieves a customer by id
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetReservations lists a customer's reservations, soonest check-in first
// GET /api/v1/customers/:id/reservations
func (h *CustomerHandler) GetReservations(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	reservations, err := h.reservationService.GetReservationsByCustomer(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "count": len(reservations)})
}

// Update applies the provided fields to a customer
// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer record
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
