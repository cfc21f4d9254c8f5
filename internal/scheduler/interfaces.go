package scheduler

import (
	"context"
	"time"

	"github.com/prepbuddy/prepbuddy/internal/calendar"
	"github.com/prepbuddy/prepbuddy/internal/pubsub"
	"github.com/prepbuddy/prepbuddy/internal/repo/models"
)

// CalendarGateway mirrors the remote calendar's event lifecycle.
// All three calls are best-effort from the scheduler's point of view:
// their failures never revert a committed booking.
type CalendarGateway interface {
	CreateEvent(ctx context.Context, event calendar.Event) (eventRef string, err error)
	UpdateEvent(ctx context.Context, eventRef string, event calendar.Event) error
	DeleteEvent(ctx context.Context, eventRef string) error
}

type EventSink interface {
	Publish(ctx context.Context, event pubsub.Event) error
}

type Notifier interface {
	Notify(ctx context.Context, user models.User, message string) error
}

type Clock interface {
	Now() time.Time
}

func NewClock() Clock {
	return stdClock{}
}

type stdClock struct{}

func (stdClock) Now() time.Time {
	return time.Now().UTC()
}
