package bookingRepo

import "garagat/models"

// BookingRepository stores finalized bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
}
