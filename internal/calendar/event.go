package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gcal "google.golang.org/api/calendar/v3"
)

// Event is the interview-side view of a calendar meeting.
// Start and End are unix milliseconds.
type Event struct {
	Title       string
	Description string

	Start int64
	End   int64

	// Attendees holds the requester's and the interviewer's emails.
	Attendees [2]string

	// AttachmentRef is the stored resume file id, empty when absent.
	AttachmentRef string
}

const resumeURLFormat = "https://drive.google.com/file/d/%s/view?usp=drivesdk"

func newEventPayload(ev Event, timeZone string) *gcal.Event {
	payload := &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		ColorId:     "1",
		Start: &gcal.EventDateTime{
			DateTime: time.UnixMilli(ev.Start).UTC().Format(time.RFC3339),
			TimeZone: timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: time.UnixMilli(ev.End).UTC().Format(time.RFC3339),
			TimeZone: timeZone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: ev.Attendees[0]},
			{Email: ev.Attendees[1]},
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: "hangoutsMeet"},
				RequestId:             uuid.NewString(),
			},
		},
	}

	if ev.AttachmentRef != "" {
		payload.Attachments = []*gcal.EventAttachment{{
			MimeType: "application/pdf",
			Title:    "resume",
			FileUrl:  fmt.Sprintf(resumeURLFormat, ev.AttachmentRef),
		}}
	}

	return payload
}
