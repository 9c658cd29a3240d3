package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"garagat/models"

	"github.com/hibiken/asynq"
)

const TypeBookingPush = "booking:push"

const bookingPushRetries = 5

// NewBookingPushTask builds the push job for one booking. The task ID is
// derived from the booking, so a second enqueue for it is rejected by asynq.
func NewBookingPushTask(payload models.BookingPushPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingPush, b)
	opts := []asynq.Option{
		asynq.TaskID("booking-push:" + payload.BookingID),
		asynq.MaxRetry(bookingPushRetries),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the queue uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PushQueue hands booking pushes to the background worker.
type PushQueue struct {
	client Enqueuer
}

func NewPushQueue(client Enqueuer) *PushQueue {
	return &PushQueue{client: client}
}

func (q *PushQueue) DispatchBookingPush(ctx context.Context, booking *models.Booking) error {
	task, opts, err := NewBookingPushTask(models.BookingPushPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to build booking push task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue booking push: %w", err)
	}
	return nil
}
