package handlers

import (
	"net/http"

	customerRepo "meliyah/database/repository/customer"
	"meliyah/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerHandler covers the customer records collection.
type CustomerHandler struct {
	Repo   customerRepo.CustomerRepository
	Logger *zap.Logger
}

func NewCustomerHandler(repo customerRepo.CustomerRepository, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Repo: repo, Logger: logger}
}

// CreateCustomer handles POST /api/customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if customer.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": "email", "message": "email address is required"})
		return
	}

	customer.ID = uuid.New().String()
	if err := h.Repo.Create(&customer); err != nil {
		h.Logger.Error("CreateCustomer: failed to persist customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// ListCustomers handles GET /api/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Repo.List()
	if err != nil {
		h.Logger.Error("ListCustomers: failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PATCH /api/customers/:id.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found", "message": err.Error()})
		return
	}

	var patch struct {
		Name             *string `json:"name,omitempty"`
		Email            *string `json:"email,omitempty"`
		Phone            *string `json:"phone,omitempty"`
		MarketingConsent *bool   `json:"marketingConsent,omitempty"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	if patch.MarketingConsent != nil {
		existing.MarketingConsent = *patch.MarketingConsent
	}

	if err := h.Repo.Update(existing); err != nil {
		h.Logger.Error("UpdateCustomer: failed to update customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}
