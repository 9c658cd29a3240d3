package models

import "time"

// BookingDraft accumulates the customer's choices for one booking attempt.
type BookingDraft struct {
	VehicleID           string     `json:"vehicleId,omitempty"`
	SelectedDate        *time.Time `json:"selectedDate,omitempty"`
	SelectedSlot        *time.Time `json:"selectedSlot,omitempty"`
	PickupAddress       string     `json:"pickupAddress,omitempty"`
	DeliveryAddress     string     `json:"deliveryAddress,omitempty"` // empty means same as pickup
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
}

// Clone returns a deep copy so callers can't reach the owner's pointers.
func (d BookingDraft) Clone() BookingDraft {
	out := d
	if d.SelectedDate != nil {
		v := *d.SelectedDate
		out.SelectedDate = &v
	}
	if d.SelectedSlot != nil {
		v := *d.SelectedSlot
		out.SelectedSlot = &v
	}
	return out
}

// DraftPatch carries optional updates to a BookingDraft. Nil fields are left alone.
type DraftPatch struct {
	VehicleID           *string
	SelectedDate        *time.Time
	SelectedTime        *TimeOfDay
	PickupAddress       *string
	DeliveryAddress     *string
	SpecialInstructions *string
}

// Empty reports whether the patch changes nothing.
func (p DraftPatch) Empty() bool {
	return p.VehicleID == nil && p.SelectedDate == nil && p.SelectedTime == nil &&
		p.PickupAddress == nil && p.DeliveryAddress == nil && p.SpecialInstructions == nil
}
