package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"garagat/models"
	"garagat/services/booking"
	"garagat/services/scheduling"
	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	// Location is the zone client dates are read in.
	Location *time.Location
}

func NewBookingHandler(svc booking.BookingSessionService, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &BookingHandler{Service: svc, Location: loc}
}

type initiateSessionInput struct {
	ProviderID string `json:"providerId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
}

// draftInput is the wire form of models.DraftPatch.
type draftInput struct {
	VehicleID           *string `json:"vehicleId"`
	Date                *string `json:"date"` // YYYY-MM-DD
	Time                *string `json:"time"` // HH:MM
	PickupAddress       *string `json:"pickupAddress"`
	DeliveryAddress     *string `json:"deliveryAddress"`
	SpecialInstructions *string `json:"specialInstructions"`
}

func (in draftInput) toPatch(loc *time.Location) (models.DraftPatch, error) {
	patch := models.DraftPatch{
		VehicleID:           in.VehicleID,
		PickupAddress:       in.PickupAddress,
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: in.SpecialInstructions,
	}
	if in.Date != nil {
		d, err := parseDate(*in.Date, loc)
		if err != nil {
			return models.DraftPatch{}, err
		}
		patch.SelectedDate = &d
	}
	if in.Time != nil {
		tod, err := models.ParseTimeOfDay(*in.Time)
		if err != nil {
			return models.DraftPatch{}, err
		}
		patch.SelectedTime = &tod
	}
	return patch, nil
}

type shiftWindowInput struct {
	Direction string `json:"direction" binding:"required"`
}

type confirmInput struct {
	PaymentMethod string `json:"paymentMethod"`
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// requireUser reads the authenticated customer or answers 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Customer not authenticated", "")
	}
	return userID, ok
}

// InitiateSessionHandler starts a booking wizard for the authenticated customer.
func (h *BookingHandler) InitiateSessionHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input initiateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.InitiateSession(c.Request.Context(), userID, input.ProviderID, input.ServiceID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	getLogger(c).Info("Booking session started", zap.String("sessionId", resp.SessionID))
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	resp, err := h.Service.GetSession(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateDraftHandler applies a partial update to the current step's fields.
func (h *BookingHandler) UpdateDraftHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input draftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	patch, err := input.toPatch(h.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.UpdateDraft(c.Request.Context(), userID, c.Param("sessionID"), patch)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ShiftWindowHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input shiftWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	dir, err := scheduling.ParseDirection(input.Direction)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid direction", err.Error())
		return
	}

	resp, err := h.Service.ShiftWindow(c.Request.Context(), userID, c.Param("sessionID"), dir)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	date, err := parseDate(c.Query("date"), h.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	slots, err := h.Service.GetSlots(c.Request.Context(), userID, c.Param("sessionID"), date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format(dateLayout),
		"slots": slots,
	})
}

func (h *BookingHandler) AdvanceHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	resp, err := h.Service.Advance(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) RetreatHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	resp, err := h.Service.Retreat(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBookingHandler completes the wizard from the payment step. An empty
// body uses the configured default payment method.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input confirmInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
	}

	resp, err := h.Service.ConfirmBooking(c.Request.Context(), userID, c.Param("sessionID"), strings.ToLower(strings.TrimSpace(input.PaymentMethod)))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	getLogger(c).Info("Booking confirmed", zap.String("bookingId", resp.Booking.ID))
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.Service.CancelSession(c.Request.Context(), userID, c.Param("sessionID")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
