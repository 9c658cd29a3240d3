package providerRepo

import "garagat/models"

// ProviderRepository defines methods for garage data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// UpdateOperatingHours replaces the provider's daily hours.
	UpdateOperatingHours(id string, hours models.OperatingHours) error
}
