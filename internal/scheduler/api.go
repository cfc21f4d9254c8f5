package scheduler

import (
	"context"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
)

type API interface {
	// Request creates a new mock interview in REQUESTED state.
	Request(ctx context.Context, input RequestInput) (*models.Interview, error)

	// Modify edits metadata and, before acceptance, the slot set.
	// A previously scheduled calendar event is kept in sync.
	Modify(ctx context.Context, interviewID string, patch ModifyInput) (*models.Interview, error)

	// Accept books exactly one slot for the interviewer and schedules
	// a calendar event. The booking commits even when the calendar
	// call fails.
	Accept(ctx context.Context, interviewerID, interviewID, slotID, resumeRef string) (*models.Interview, error)

	// Withdraw moves an open request to INACTIVE.
	Withdraw(ctx context.Context, userID, interviewID string) (*models.Interview, error)

	// Feedback records the interviewer's feedback and completes the interview.
	Feedback(ctx context.Context, interviewerID, interviewID, feedback string) (*models.Interview, error)

	// Delete removes the interview and cleans up a pending calendar event.
	Delete(ctx context.Context, userID, interviewID string) error

	Get(ctx context.Context, userID, interviewID string) (*models.Interview, error)
	ListRequested(ctx context.Context, userID string, status *models.Status) ([]models.Interview, error)
	ListTaken(ctx context.Context, interviewerID string, status *models.Status) ([]models.Interview, error)

	// UserEvents projects booked slots of the user's active interviews
	// into calendar-view entries.
	UserEvents(ctx context.Context, userID string) ([]models.UserEvent, error)
}

type RequestInput struct {
	RequesterID string
	Title       string
	Description string
	Company     string
	Role        string
	ResumeRef   string
	Slots       []SlotInput
}

type SlotInput struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ModifyInput is a partial edit: nil fields keep their current values.
// A non-nil Slots replaces the whole slot set.
type ModifyInput struct {
	Title       *string
	Description *string
	Company     *string
	Role        *string
	Slots       []SlotInput
}
