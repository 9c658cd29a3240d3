package models

import "time"

// Customer holds the read-only inputs the booking wizard needs about a user.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email,omitempty"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	Vehicles  []Vehicle `bson:"vehicles" json:"vehicles"`
	Addresses []Address `bson:"addresses" json:"addresses"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// DefaultAddress returns the address flagged as default, if any.
func (c Customer) DefaultAddress() (Address, bool) {
	for _, a := range c.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}
