package models

// BookingPushPayload is the queued job for a booking confirmation push.
type BookingPushPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
}
