package models

import (
	"context"

	"github.com/prepbuddy/prepbuddy/pkg/errors"
)

type InterviewsRepo interface {
	// Insert stores a freshly requested interview.
	Insert(ctx context.Context, interview Interview) error

	// Find returns the interview or nil when the id does not resolve.
	Find(ctx context.Context, id string) (*Interview, error)

	// FindByRequester returns interviews created by the user, optionally narrowed by status.
	FindByRequester(ctx context.Context, userID string, status *Status) ([]Interview, error)

	// FindTaken returns interviews from the interviewer's point of view:
	// all open requests when status is REQUESTED, otherwise the ones
	// the interviewer has taken.
	FindTaken(ctx context.Context, interviewerID string, status *Status) ([]Interview, error)

	// FindByParticipant returns interviews in any of the given statuses
	// where the user is either the requester or the interviewer.
	FindByParticipant(ctx context.Context, userID string, statuses ...Status) ([]Interview, error)

	// Update applies a metadata/slots patch to a single document
	// and returns the updated state, or nil when the id does not resolve.
	Update(ctx context.Context, id string, patch InterviewPatch) (*Interview, error)

	// BookSlot atomically books the named slot: it matches only a REQUESTED
	// interview with no booked slot, sets the interviewer and flips the
	// interview to ACCEPTED in the same write. A nil result means the
	// guard did not match.
	BookSlot(ctx context.Context, id, slotID, interviewerID string, at int64) (*Interview, error)

	// SetEventRef attaches the remote calendar event reference.
	SetEventRef(ctx context.Context, id, eventRef string, at int64) error

	// SetStatus flips the interview between statuses atomically.
	// A nil result means it was not in the expected status anymore.
	SetStatus(ctx context.Context, id string, from, to Status, at int64) (*Interview, error)

	// SetFeedback records feedback and completes an ACCEPTED interview.
	// A nil result means the interview was not in ACCEPTED state anymore.
	SetFeedback(ctx context.Context, id, feedback string, at int64) (*Interview, error)

	// Delete removes the interview and returns its last persisted state,
	// or nil when the id does not resolve.
	Delete(ctx context.Context, id string) (*Interview, error)
}

type Interview struct {
	ID            string `json:"id"                      bson:"_id"`
	RequesterID   string `json:"userId"                  bson:"userId"`
	InterviewedBy string `json:"interviewedBy,omitempty" bson:"interviewedBy,omitempty"`

	Title       string `json:"title"       bson:"title"`
	Description string `json:"description" bson:"description"`
	Company     string `json:"company"     bson:"company"`
	Role        string `json:"role"        bson:"role"`

	Resume string `json:"resume" bson:"resume"`

	Slots  []Slot `json:"availableSlots" bson:"availableSlots"`
	Status Status `json:"status"         bson:"status"`

	Feedback   string `json:"feedback,omitempty"   bson:"feedback,omitempty"`
	FeedbackAt int64  `json:"feedbackAt,omitempty" bson:"feedbackAt,omitempty"`

	EventID string `json:"eventId,omitempty" bson:"eventId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Slot is one candidate time window, bounds in unix milliseconds.
type Slot struct {
	ID     string `json:"id"     bson:"id"`
	Start  int64  `json:"start"  bson:"start"`
	End    int64  `json:"end"    bson:"end"`
	Booked bool   `json:"booked" bson:"booked"`
}

func (s Slot) Valid() bool {
	return s.End > s.Start
}

// BookedSlot returns the booked slot, if any. At most one slot
// may be booked on a persisted interview.
func (i Interview) BookedSlot() *Slot {
	for idx := range i.Slots {
		if i.Slots[idx].Booked {
			return &i.Slots[idx]
		}
	}
	return nil
}

// Slot finds a slot by its id within the interview's slot set.
func (i Interview) Slot(id string) *Slot {
	for idx := range i.Slots {
		if i.Slots[idx].ID == id {
			return &i.Slots[idx]
		}
	}
	return nil
}

type InterviewPatch struct {
	Title       *string
	Description *string
	Company     *string
	Role        *string
	Resume      *string
	Slots       *[]Slot

	UpdatedAt int64
}

const (
	InterviewFieldID            = "_id"
	InterviewFieldRequester     = "userId"
	InterviewFieldInterviewedBy = "interviewedBy"
	InterviewFieldTitle         = "title"
	InterviewFieldDescription   = "description"
	InterviewFieldCompany       = "company"
	InterviewFieldRole          = "role"
	InterviewFieldResume        = "resume"
	InterviewFieldSlots         = "availableSlots"
	InterviewFieldStatus        = "status"
	InterviewFieldFeedback      = "feedback"
	InterviewFieldFeedbackAt    = "feedbackAt"
	InterviewFieldEventID       = "eventId"
	InterviewFieldCreatedAt     = "createdAt"
	InterviewFieldUpdatedAt     = "updatedAt"

	SlotFieldID     = "id"
	SlotFieldStart  = "start"
	SlotFieldEnd    = "end"
	SlotFieldBooked = "booked"
)

type Status int

const (
	// StatusRequested is set when the interview has been asked for
	StatusRequested = Status(iota) + 1

	// StatusInactive is set when the request has been withdrawn or expired
	StatusInactive

	// StatusAccepted is set when an interviewer has booked a slot
	StatusAccepted

	// StatusCompleted is set when feedback has been given
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusRequested: "REQUESTED",
	StatusInactive:  "INACTIVE",
	StatusAccepted:  "ACCEPTED",
	StatusCompleted: "COMPLETED",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

func ParseStatus(raw string) (Status, bool) {
	for s, name := range statusNames {
		if name == raw {
			return s, true
		}
	}
	return 0, false
}

func (s Status) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, errors.Errorf("unknown interview status %d", int(s))
	}
	return []byte(`"` + name + `"`), nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return errors.Errorf("malformed interview status %s", raw)
	}

	parsed, ok := ParseStatus(raw[1 : len(raw)-1])
	if !ok {
		return errors.Errorf("unknown interview status %s", raw)
	}

	*s = parsed
	return nil
}

// UserEvent is a calendar-view projection of a booked slot.
type UserEvent struct {
	InterviewID string `json:"interviewId"`
	Title       string `json:"title"`
	Status      Status `json:"status"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
}
