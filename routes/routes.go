package routes

import (
	"net/http"
	"time"

	"meliyah/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Catalog   *handlers.CatalogHandler
	Session   *handlers.SessionHandler
	Booking   *handlers.BookingHandler
	Customer  *handlers.CustomerHandler
	Analytics *handlers.AnalyticsHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerHealthRoute(r)
	registerCatalogRoutes(r, hb)
	registerBookingRoutes(r, hb)
	registerCustomerRoutes(r, hb)
	registerAnalyticsRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// registerCatalogRoutes registers the read-only catalog endpoints.
func registerCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/:id", hb.Catalog.GetService)
		api.GET("/packages", hb.Catalog.ListPackages)
		api.GET("/packages/:id", hb.Catalog.GetPackage)
		api.GET("/employees", hb.Catalog.ListEmployees)
		api.GET("/employees/:id", hb.Catalog.GetEmployee)
		api.GET("/employees/:id/availability", hb.Catalog.GetEmployeeAvailability)
		api.GET("/products", hb.Catalog.ListProducts)
		api.GET("/products/:id", hb.Catalog.GetProduct)
		api.GET("/salon-info", hb.Catalog.GetSalonInfo)
	}
}

// registerBookingRoutes registers the booking session flow and the booking
// collection.
func registerBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	session := r.Group("/api/booking/session")
	{
		session.POST("", hb.Session.StartSession)
		session.GET("/:sessionID", hb.Session.GetSession)
		session.PUT("/:sessionID/package", hb.Session.SelectPackage)
		session.PUT("/:sessionID/employee", hb.Session.SelectEmployee)
		session.PUT("/:sessionID/date", hb.Session.SelectDate)
		session.PUT("/:sessionID/time", hb.Session.SelectTime)
		session.POST("/:sessionID/cart", hb.Session.AddProduct)
		session.DELETE("/:sessionID/cart/:productID", hb.Session.RemoveProduct)
		session.POST("/:sessionID/cart/coupon", hb.Session.ApplyCoupon)
		session.POST("/:sessionID/cart/checkout", hb.Booking.CheckoutCart)
		session.POST("/:sessionID/reset", hb.Session.ResetSession)
		session.DELETE("/:sessionID", hb.Session.CancelSession)
	}

	booking := r.Group("/api/booking")
	{
		booking.POST("/confirm", hb.Booking.ConfirmBooking)
		booking.POST("/payment", hb.Booking.CompletePayment)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", hb.Booking.ListBookings)
		bookings.GET("/:id", hb.Booking.GetBooking)
		bookings.PATCH("/:id", hb.Booking.UpdateBooking)
	}
}

// registerCustomerRoutes registers customer records endpoints.
func registerCustomerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("", hb.Customer.CreateCustomer)
		api.GET("", hb.Customer.ListCustomers)
		api.GET("/:id", hb.Customer.GetCustomer)
		api.PATCH("/:id", hb.Customer.UpdateCustomer)
	}
}

// registerAnalyticsRoutes registers the dashboard endpoints.
func registerAnalyticsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.GET("/dashboard", hb.Analytics.DashboardMetrics)
		api.GET("/revenue", hb.Analytics.RevenueTimeline)
	}
}
