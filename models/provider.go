package models

import "time"

// ServiceOffering is one priced service in a garage's catalogue.
type ServiceOffering struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Currency string  `bson:"currency" json:"currency"` // e.g. "AED"
}

// Provider is a garage that can be booked.
type Provider struct {
	ID             string            `bson:"id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Address        string            `bson:"address,omitempty" json:"address,omitempty"`
	OperatingHours *OperatingHours   `bson:"operatingHours,omitempty" json:"operatingHours,omitempty"` // nil means the platform default
	Services       []ServiceOffering `bson:"services" json:"services"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Service looks up an offering by ID.
func (p Provider) Service(id string) (ServiceOffering, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceOffering{}, false
}
