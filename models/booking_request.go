package models

import "time"

// BookingRequest is the final result of a completed wizard. It is a snapshot;
// nothing in it points back into the draft it was built from.
type BookingRequest struct {
	VehicleID           string    `bson:"vehicleId" json:"vehicleId"`
	Date                time.Time `bson:"date" json:"date"`
	Slot                time.Time `bson:"slot" json:"slot"`
	PickupAddress       string    `bson:"pickupAddress" json:"pickupAddress"`
	DeliveryAddress     string    `bson:"deliveryAddress" json:"deliveryAddress"`
	SpecialInstructions string    `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	CompletedAt         time.Time `bson:"completedAt" json:"completedAt"`
}
