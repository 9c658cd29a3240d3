package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateDraft     gin.HandlerFunc
	ShiftWindow     gin.HandlerFunc
	GetSlots        gin.HandlerFunc
	Advance         gin.HandlerFunc
	Retreat         gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Customer endpoints
	GetVehicles  gin.HandlerFunc
	GetAddresses gin.HandlerFunc
}

func NewHandlerBundle(bh *BookingHandler, ch *CustomerHandler) *HandlerBundle {
	return &HandlerBundle{
		InitiateSession: bh.InitiateSessionHandler,
		GetSession:      bh.GetSessionHandler,
		UpdateDraft:     bh.UpdateDraftHandler,
		ShiftWindow:     bh.ShiftWindowHandler,
		GetSlots:        bh.GetSlotsHandler,
		Advance:         bh.AdvanceHandler,
		Retreat:         bh.RetreatHandler,
		ConfirmBooking:  bh.ConfirmBookingHandler,
		CancelSession:   bh.CancelSessionHandler,
		GetVehicles:     ch.GetVehiclesHandler,
		GetAddresses:    ch.GetAddressesHandler,
	}
}
