package customerRepo

import "meliyah/models"

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id string) (*models.Customer, error)
	List() ([]models.Customer, error)
	Update(customer *models.Customer) error
	CountCreatedBetween(start, end string) (int, error)
}
