package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"garagat/database"
	bookingRepo "garagat/database/repository/booking"
	customerRepo "garagat/database/repository/customer"
	"garagat/models"
	"garagat/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PushProcessor sends the confirmation push for a queued booking.
type PushProcessor struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Push      notification.NotificationService
	Logger    *zap.Logger
}

func (p *PushProcessor) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// ProcessTask implements asynq.Handler. Jobs that can never succeed are
// returned with asynq.SkipRetry; a customer without a device is not an error.
func (p *PushProcessor) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload models.BookingPushPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid booking push payload: %v: %w", err, asynq.SkipRetry)
	}
	logger := p.logger().With(zap.String("bookingId", payload.BookingID))

	booking, err := p.Bookings.GetByID(payload.BookingID)
	if err != nil {
		return p.lookupError("booking", err)
	}
	customer, err := p.Customers.GetByID(payload.UserID)
	if err != nil {
		return p.lookupError("customer", err)
	}

	if err := p.Push.SendBookingConfirmation(ctx, customer, booking); err != nil {
		if errors.Is(err, notification.ErrNoDeviceToken) {
			logger.Info("Booking push skipped, no device registered")
			return nil
		}
		logger.Warn("Booking push failed", zap.Error(err))
		return err
	}
	logger.Info("Booking push sent")
	return nil
}

func (p *PushProcessor) lookupError(what string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("booking push %s: %v: %w", what, err, asynq.SkipRetry)
	}
	return fmt.Errorf("booking push %s: %w", what, err)
}

// NewPushWorker builds the asynq server and mux that run booking pushes.
// Callers Start it and Shutdown on exit.
func NewPushWorker(opt asynq.RedisClientOpt, processor *PushProcessor, concurrency int) (*asynq.Server, *asynq.ServeMux) {
	logger := processor.logger()
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Background task failed", zap.String("type", task.Type()), zap.Error(err))
		}),
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeBookingPush, processor)
	return srv, mux
}
