// File: handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"meliyah/models"
	"meliyah/services/selection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the booking session transitions over HTTP.
type SessionHandler struct {
	Selection selection.SelectionService
	Logger    *zap.Logger
}

func NewSessionHandler(svc selection.SelectionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Selection: svc, Logger: logger}
}

// sessionResponse bundles the Selection with its derived totals, so clients
// never compute prices themselves.
func sessionResponse(sel *models.Selection) gin.H {
	return gin.H{
		"selection":    sel,
		"totalPrice":   selection.TotalPrice(sel),
		"cartSubtotal": selection.CartSubtotal(sel),
		"cartTotal":    selection.CartTotal(sel),
	}
}

// respondSelectionError maps the selection error taxonomy onto HTTP codes.
func respondSelectionError(c *gin.Context, logger *zap.Logger, err error) {
	var validation *selection.ValidationError
	var catalog *selection.CatalogUnavailableError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"field":   validation.Field,
			"message": validation.Reason,
		})
	case errors.Is(err, selection.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &catalog):
		logger.Error("catalog unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable", "message": err.Error()})
	default:
		logger.Error("session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "message": err.Error()})
	}
}

// StartSession handles POST /api/booking/session.
func (h *SessionHandler) StartSession(c *gin.Context) {
	sel, err := h.Selection.StartSession()
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sel, err := h.Selection.GetSession(c.Param("sessionID"))
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// SelectPackage handles PUT /api/booking/session/:sessionID/package.
func (h *SessionHandler) SelectPackage(c *gin.Context) {
	var body struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.SelectPackage(c.Param("sessionID"), body.PackageID)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// SelectEmployee handles PUT /api/booking/session/:sessionID/employee.
func (h *SessionHandler) SelectEmployee(c *gin.Context) {
	var body struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.SelectEmployee(c.Param("sessionID"), body.EmployeeID)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// SelectDate handles PUT /api/booking/session/:sessionID/date.
func (h *SessionHandler) SelectDate(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.SelectDate(c.Param("sessionID"), body.Date)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// SelectTime handles PUT /api/booking/session/:sessionID/time. An empty time
// explicitly clears the current choice.
func (h *SessionHandler) SelectTime(c *gin.Context) {
	var body struct {
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.SelectTime(c.Param("sessionID"), body.Time)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// AddProduct handles POST /api/booking/session/:sessionID/cart.
func (h *SessionHandler) AddProduct(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.AddProduct(c.Param("sessionID"), body.ProductID)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// RemoveProduct handles DELETE /api/booking/session/:sessionID/cart/:productID.
// Every cart line with the product id is removed.
func (h *SessionHandler) RemoveProduct(c *gin.Context) {
	sel, err := h.Selection.RemoveProduct(c.Param("sessionID"), c.Param("productID"))
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// ApplyCoupon handles POST /api/booking/session/:sessionID/cart/coupon.
func (h *SessionHandler) ApplyCoupon(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	sel, err := h.Selection.ApplyCoupon(c.Param("sessionID"), body.Code)
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// ResetSession handles POST /api/booking/session/:sessionID/reset.
func (h *SessionHandler) ResetSession(c *gin.Context) {
	sel, err := h.Selection.ResetAfterCheckout(c.Param("sessionID"))
	if err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sel))
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *SessionHandler) CancelSession(c *gin.Context) {
	if err := h.Selection.CancelSession(c.Param("sessionID")); err != nil {
		respondSelectionError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
