// File: handlers/booking.go
package handlers

import (
	"net/http"
	"time"

	bookingRepo "meliyah/database/repository/booking"
	"meliyah/models"
	"meliyah/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler covers checkout, payment outcomes and the persisted
// booking collection.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Repo       bookingRepo.BookingRepository
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Repo: repo, Logger: logger}
}

// ConfirmBooking handles POST /api/booking/confirm: it freezes the session's
// Selection into a Booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var body struct {
		SessionID string                `json:"sessionId" binding:"required"`
		Contact   models.ContactDetails `json:"contact"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	bk, err := h.BookingSvc.Materialize(body.SessionID, body.Contact)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CompletePayment handles POST /api/booking/payment. The payment method UI
// lives in the client; only the outcome is recorded here.
func (h *BookingHandler) CompletePayment(c *gin.Context) {
	var body struct {
		BookingID string `json:"bookingId" binding:"required"`
		Outcome   string `json:"outcome" binding:"required"`
		Method    string `json:"method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	bk, err := h.BookingSvc.CompletePayment(body.BookingID, body.Outcome, body.Method)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CheckoutCart handles POST /api/booking/session/:sessionID/cart/checkout.
func (h *BookingHandler) CheckoutCart(c *gin.Context) {
	var body struct {
		Contact models.ContactDetails `json:"contact"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	receipt, err := h.BookingSvc.CheckoutCart(c.Param("sessionID"), body.Contact)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CreateBooking handles POST /api/bookings: direct creation through the
// persistence API; the server assigns the id.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var bk models.Booking
	if err := c.ShouldBindJSON(&bk); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	bk.ID = uuid.New().String()
	if bk.Status == "" {
		bk.Status = models.BookingStatusPending
	}
	if bk.PaymentStatus == "" {
		bk.PaymentStatus = models.PaymentStatusPending
	}
	bk.CreatedAt = time.Now()

	if err := h.Repo.Create(&bk); err != nil {
		h.Logger.Error("CreateBooking: failed to persist booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// ListBookings handles GET /api/bookings?startDate=&endDate=&status=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "message": err.Error()})
		return
	}

	bookings, err := h.Repo.List(filter)
	if err != nil {
		h.Logger.Error("ListBookings: failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// UpdateBooking handles PATCH /api/bookings/:id with partial fields.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	bk, err := h.Repo.Update(c.Param("id"), upd)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to update booking", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bk)
}
