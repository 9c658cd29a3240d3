package booking

import (
	"garagat/models"

	"go.uber.org/zap"
)

// Notifier receives the wizard's events. Calls are synchronous and must not block.
type Notifier interface {
	// StepAdvanced is raised exactly once per successful Advance.
	StepAdvanced(from, to models.WizardStep)
	ValidationFailed(step models.WizardStep)
	Completed(req models.BookingRequest)
}

// Notifiers fans events out to several notifiers in order.
type Notifiers []Notifier

func (n Notifiers) StepAdvanced(from, to models.WizardStep) {
	for _, x := range n {
		x.StepAdvanced(from, to)
	}
}

func (n Notifiers) ValidationFailed(step models.WizardStep) {
	for _, x := range n {
		x.ValidationFailed(step)
	}
}

func (n Notifiers) Completed(req models.BookingRequest) {
	for _, x := range n {
		x.Completed(req)
	}
}

type nopNotifier struct{}

func (nopNotifier) StepAdvanced(models.WizardStep, models.WizardStep) {}
func (nopNotifier) ValidationFailed(models.WizardStep)               {}
func (nopNotifier) Completed(models.BookingRequest)                  {}

// LoggingNotifier writes wizard events to a zap logger.
type LoggingNotifier struct {
	Logger *zap.Logger
}

func NewLoggingNotifier(logger *zap.Logger) *LoggingNotifier {
	return &LoggingNotifier{Logger: logger}
}

func (l *LoggingNotifier) StepAdvanced(from, to models.WizardStep) {
	l.Logger.Info("Step completed",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("progress", to.Index()+1),
	)
}

func (l *LoggingNotifier) ValidationFailed(step models.WizardStep) {
	l.Logger.Warn("Please complete all required fields", zap.String("step", step.String()))
}

func (l *LoggingNotifier) Completed(req models.BookingRequest) {
	l.Logger.Info("Booking wizard completed",
		zap.String("vehicleID", req.VehicleID),
		zap.Time("slot", req.Slot),
	)
}
