package handlers

import (
	"net/http"

	catalogRepo "meliyah/database/repository/catalog"
	"meliyah/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only salon catalog.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices()
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.Catalog.GetService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service)
}

// ListPackages handles GET /api/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.Catalog.ListPackages()
	if err != nil {
		h.Logger.Error("ListPackages: failed to fetch packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch packages", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetPackage handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Catalog.GetPackage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListEmployees handles GET /api/employees.
func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	employees, err := h.Catalog.ListEmployees()
	if err != nil {
		h.Logger.Error("ListEmployees: failed to fetch employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employees", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /api/employees/:id.
func (h *CatalogHandler) GetEmployee(c *gin.Context) {
	employee, err := h.Catalog.GetEmployee(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// GetEmployeeAvailability handles GET /api/employees/:id/availability?date=.
func (h *CatalogHandler) GetEmployeeAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date", "message": "query parameter 'date' is required"})
		return
	}

	employee, err := h.Catalog.GetEmployee(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found", "message": err.Error()})
		return
	}

	slots, err := availability.ResolveSlotsForDate(*employee, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		h.Logger.Error("ListProducts: failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.Catalog.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetSalonInfo handles GET /api/salon-info.
func (h *CatalogHandler) GetSalonInfo(c *gin.Context) {
	info, err := h.Catalog.GetSalonInfo()
	if err != nil {
		h.Logger.Error("GetSalonInfo: failed to fetch salon info", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salon info", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
