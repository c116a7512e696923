package catalogRepo

import "meliyah/models"

// CatalogRepository exposes the read-only salon catalog: services, packages,
// employees, retail products and the salon profile. The booking core never
// writes through this interface.
type CatalogRepository interface {
	ListServices() ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	ListPackages() ([]models.Package, error)
	GetPackage(id string) (*models.Package, error)
	ListEmployees() ([]models.Employee, error)
	GetEmployee(id string) (*models.Employee, error)
	ListProducts() ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	GetSalonInfo() (*models.SalonInfo, error)
}
