package booking

import (
	"errors"
	"fmt"

	"garagat/models"
)

var (
	// ErrValidationFailed matches every *ValidationError through errors.Is.
	ErrValidationFailed  = errors.New("validation failed")
	ErrWizardCompleted   = errors.New("booking wizard already completed")
	ErrTimeWithoutDate   = errors.New("a time was given without a selected date")
	ErrFieldNotEditable  = errors.New("field belongs to another step")
	ErrSessionNotFound   = errors.New("booking session not found or expired")
	ErrSessionConflict   = errors.New("booking session was modified concurrently")
	ErrNotAtConfirmation = errors.New("booking session is not at the payment step")
	ErrUnknownService    = errors.New("service is not offered by this provider")
)

// ValidationError is returned by Advance when the current step is incomplete.
// The wizard stays on Step.
type ValidationError struct {
	Code    string
	Step    models.WizardStep
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Step, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func NewValidationError(step models.WizardStep, msg string) error {
	return &ValidationError{
		Code:    "validationFailed",
		Step:    step,
		Message: msg,
	}
}
