package customerRepo

import "garagat/models"

// CustomerRepository gives read access to the data the booking wizard consumes.
type CustomerRepository interface {
	// GetByID retrieves a customer with vehicles and saved addresses.
	GetByID(id string) (*models.Customer, error)
	// GetVehicles returns the customer's registered vehicles.
	GetVehicles(id string) ([]models.Vehicle, error)
	// GetAddresses returns the customer's saved addresses.
	GetAddresses(id string) ([]models.Address, error)
}
