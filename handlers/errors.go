package handlers

import (
	"errors"
	"net/http"

	"garagat/database"
	"garagat/services/booking"
	"garagat/services/payment"
	"garagat/services/scheduling"
	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Please complete all required fields", vErr.Message)
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", err.Error())
	case errors.Is(err, database.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Resource not found", err.Error())
	case errors.Is(err, booking.ErrSessionConflict),
		errors.Is(err, booking.ErrWizardCompleted),
		errors.Is(err, booking.ErrNotAtConfirmation):
		utils.JSONError(c, http.StatusConflict, "Booking session cannot be changed", err.Error())
	case errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrTimeWithoutDate),
		errors.Is(err, booking.ErrFieldNotEditable),
		errors.Is(err, payment.ErrUnsupportedMethod):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
	case errors.Is(err, scheduling.ErrConfiguration):
		getLogger(c).Error("Provider schedule is misconfigured", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Provider schedule is misconfigured", err.Error())
	default:
		getLogger(c).Error("Booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
