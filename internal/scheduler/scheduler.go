package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepbuddy/prepbuddy/internal/calendar"
	"github.com/prepbuddy/prepbuddy/internal/pubsub"
	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

// Scheduler is the booking state machine. The persisted interview is
// the source of truth; calendar events, lifecycle broadcasts and
// notifications are projections that may lag or go missing.
type Scheduler struct {
	interviews models.InterviewsRepo
	users      models.UsersRepo
	calendar   CalendarGateway
	events     EventSink
	notifier   Notifier
	clock      Clock
	log        logger.Logger
}

func New(
	log logger.Logger,
	interviews models.InterviewsRepo,
	users models.UsersRepo,
	gateway CalendarGateway,
	events EventSink,
	notifier Notifier,
	clock Clock,
) *Scheduler {
	if clock == nil {
		clock = NewClock()
	}

	return &Scheduler{
		interviews: interviews,
		users:      users,
		calendar:   gateway,
		events:     events,
		notifier:   notifier,
		clock:      clock,
		log:        log.With("scheduler"),
	}
}

func (s *Scheduler) Request(ctx context.Context, input RequestInput) (*models.Interview, error) {
	err := input.validate()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UnixMilli()

	slots := make([]models.Slot, 0, len(input.Slots))
	for _, slot := range input.Slots {
		slots = append(slots, models.Slot{
			ID:    uuid.NewString(),
			Start: slot.Start,
			End:   slot.End,
		})
	}

	interview := models.Interview{
		ID:          uuid.NewString(),
		RequesterID: input.RequesterID,
		Title:       input.Title,
		Description: input.Description,
		Company:     input.Company,
		Role:        input.Role,
		Resume:      input.ResumeRef,
		Slots:       slots,
		Status:      models.StatusRequested,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.interviews.Insert(ctx, interview)
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}

	s.publish(ctx, pubsub.EventRequested, interview.ID, input.RequesterID)
	return &interview, nil
}

func (s *Scheduler) Modify(ctx context.Context, interviewID string, patch ModifyInput) (*models.Interview, error) {
	found, err := s.find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	// Slot membership is frozen once an interviewer is on the hook;
	// a completed interview is read-only.
	switch found.Status {
	case models.StatusCompleted:
		return nil, errors.Mark(errors.Error("completed interview cannot be modified"), ErrConflict)
	case models.StatusAccepted:
		if patch.Slots != nil {
			return nil, errors.Mark(errors.Error("slots are frozen after acceptance"), ErrConflict)
		}
	}

	repoPatch := models.InterviewPatch{
		Title:       patch.Title,
		Description: patch.Description,
		Company:     patch.Company,
		Role:        patch.Role,
		UpdatedAt:   s.clock.Now().UnixMilli(),
	}

	if patch.Slots != nil {
		if len(patch.Slots) == 0 {
			return nil, errors.Mark(errors.Error("at least one slot is required"), ErrValidation)
		}

		err = validateSlots(patch.Slots)
		if err != nil {
			return nil, err
		}

		slots := make([]models.Slot, 0, len(patch.Slots))
		for _, slot := range patch.Slots {
			slots = append(slots, models.Slot{
				ID:    uuid.NewString(),
				Start: slot.Start,
				End:   slot.End,
			})
		}
		repoPatch.Slots = &slots
	}

	updated, err := s.interviews.Update(ctx, interviewID, repoPatch)
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}
	if updated == nil {
		return nil, errors.Mark(errors.Errorf("no interview with id %q", interviewID), ErrNotFound)
	}

	s.pushEventUpdate(ctx, updated)
	return updated, nil
}

func (s *Scheduler) Accept(ctx context.Context, interviewerID, interviewID, slotID, resumeRef string) (*models.Interview, error) {
	if interviewerID == "" || slotID == "" || resumeRef == "" {
		return nil, errors.Mark(errors.Error("interviewer, slot and resume are required"), ErrValidation)
	}

	found, err := s.find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if found.Slot(slotID) == nil {
		return nil, errors.Mark(errors.Errorf("slot %q is not offered by interview %q", slotID, interviewID), ErrValidation)
	}

	if found.Status != models.StatusRequested || found.BookedSlot() != nil {
		return nil, errors.Mark(errors.Errorf("interview %q is already %s", interviewID, found.Status), ErrConflict)
	}

	booked, err := s.interviews.BookSlot(ctx, interviewID, slotID, interviewerID, s.clock.Now().UnixMilli())
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}
	if booked == nil {
		// Lost the race: somebody booked or withdrew the request
		// between the read and the guarded write.
		return nil, errors.Mark(errors.Errorf("interview %q is no longer open", interviewID), ErrConflict)
	}

	s.createEvent(ctx, booked, resumeRef)

	s.publish(ctx, pubsub.EventAccepted, interviewID, interviewerID)
	s.notifyBooking(ctx, booked)

	return booked, nil
}

func (s *Scheduler) Withdraw(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	found, err := s.find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if found.RequesterID != userID {
		return nil, errors.Mark(errors.Errorf("no interview %q for user %q", interviewID, userID), ErrNotFound)
	}

	updated, err := s.interviews.SetStatus(
		ctx,
		interviewID,
		models.StatusRequested,
		models.StatusInactive,
		s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}
	if updated == nil {
		return nil, errors.Mark(errors.Errorf("interview %q is not an open request", interviewID), ErrConflict)
	}

	return updated, nil
}

func (s *Scheduler) Feedback(ctx context.Context, interviewerID, interviewID, feedback string) (*models.Interview, error) {
	if feedback == "" {
		return nil, errors.Mark(errors.Error("feedback text is required"), ErrValidation)
	}

	found, err := s.find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if found.Status != models.StatusAccepted {
		return nil, errors.Mark(errors.Errorf("interview %q is %s, feedback needs ACCEPTED", interviewID, found.Status), ErrConflict)
	}

	if found.InterviewedBy != interviewerID {
		return nil, errors.Mark(errors.Error("feedback must come from the recorded interviewer"), ErrConflict)
	}

	updated, err := s.interviews.SetFeedback(ctx, interviewID, feedback, s.clock.Now().UnixMilli())
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}
	if updated == nil {
		return nil, errors.Mark(errors.Errorf("interview %q stopped accepting feedback", interviewID), ErrConflict)
	}

	s.publish(ctx, pubsub.EventCompleted, interviewID, interviewerID)
	return updated, nil
}

func (s *Scheduler) Delete(ctx context.Context, userID, interviewID string) error {
	found, err := s.find(ctx, interviewID)
	if err != nil {
		return err
	}

	if found.RequesterID != userID {
		return errors.Mark(errors.Errorf("no interview %q for user %q", interviewID, userID), ErrNotFound)
	}

	removed, err := s.interviews.Delete(ctx, interviewID)
	if err != nil {
		return errors.Mark(err, ErrStorage)
	}
	if removed == nil {
		return errors.Mark(errors.Errorf("no interview with id %q", interviewID), ErrNotFound)
	}

	// The record is gone at this point; event cleanup runs after the
	// commit and its failure leaves an orphaned remote event at worst.
	s.cleanupEvent(ctx, removed)

	s.publish(ctx, pubsub.EventDeleted, interviewID, userID)
	s.notifyCancellation(ctx, removed)
	return nil
}

func (s *Scheduler) Get(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	found, err := s.find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if found.RequesterID != userID && found.InterviewedBy != userID {
		return nil, errors.Mark(errors.Errorf("no interview %q for user %q", interviewID, userID), ErrNotFound)
	}

	return found, nil
}

func (s *Scheduler) ListRequested(ctx context.Context, userID string, status *models.Status) ([]models.Interview, error) {
	found, err := s.interviews.FindByRequester(ctx, userID, status)
	return found, errors.Mark(err, ErrStorage)
}

func (s *Scheduler) ListTaken(ctx context.Context, interviewerID string, status *models.Status) ([]models.Interview, error) {
	found, err := s.interviews.FindTaken(ctx, interviewerID, status)
	return found, errors.Mark(err, ErrStorage)
}

func (s *Scheduler) UserEvents(ctx context.Context, userID string) ([]models.UserEvent, error) {
	active, err := s.interviews.FindByParticipant(ctx, userID, models.StatusAccepted, models.StatusCompleted)
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}

	events := make([]models.UserEvent, 0, len(active))
	for _, interview := range active {
		slot := interview.BookedSlot()
		if slot == nil {
			continue
		}

		events = append(events, models.UserEvent{
			InterviewID: interview.ID,
			Title:       interview.Title,
			Status:      interview.Status,
			Start:       slot.Start,
			End:         slot.End,
		})
	}

	return events, nil
}

func (s *Scheduler) find(ctx context.Context, id string) (*models.Interview, error) {
	found, err := s.interviews.Find(ctx, id)
	if err != nil {
		return nil, errors.Mark(err, ErrStorage)
	}
	if found == nil {
		return nil, errors.Mark(errors.Errorf("no interview with id %q", id), ErrNotFound)
	}
	return found, nil
}

// createEvent schedules the remote calendar event for a fresh booking
// and persists its reference. Any failure leaves the booking intact
// with an empty event ref.
func (s *Scheduler) createEvent(ctx context.Context, interview *models.Interview, resumeRef string) {
	slot := interview.BookedSlot()
	if slot == nil {
		return
	}

	emails, err := s.users.EmailsOf(ctx, interview.RequesterID, interview.InterviewedBy)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "resolve participant emails"))
		return
	}

	ref, err := s.calendar.CreateEvent(ctx, calendar.Event{
		Title:         interview.Title,
		Description:   interview.Description,
		Start:         slot.Start,
		End:           slot.End,
		Attendees:     [2]string{emails[0], emails[1]},
		AttachmentRef: resumeRef,
	})
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "create calendar event"))
		return
	}

	err = s.interviews.SetEventRef(ctx, interview.ID, ref, s.clock.Now().UnixMilli())
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "persist calendar event ref"))
		return
	}

	interview.EventID = ref
}

// pushEventUpdate re-synchronizes an already scheduled calendar event
// after an edit. Only meaningful for an accepted booking that is still
// in the future.
func (s *Scheduler) pushEventUpdate(ctx context.Context, interview *models.Interview) {
	booked := interview.BookedSlot()
	if booked == nil || interview.Status != models.StatusAccepted || interview.EventID == "" {
		return
	}
	if booked.Start <= s.clock.Now().UnixMilli() {
		return
	}

	emails, err := s.users.EmailsOf(ctx, interview.RequesterID, interview.InterviewedBy)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "resolve participant emails"))
		return
	}

	err = s.calendar.UpdateEvent(ctx, interview.EventID, calendar.Event{
		Title:       interview.Title,
		Description: interview.Description,
		Start:       booked.Start,
		End:         booked.End,
		Attendees:   [2]string{emails[0], emails[1]},
	})
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "update calendar event"))
	}
}

func (s *Scheduler) cleanupEvent(ctx context.Context, interview *models.Interview) {
	booked := interview.BookedSlot()
	if booked == nil || interview.Status != models.StatusAccepted || interview.EventID == "" {
		return
	}
	if booked.Start <= s.clock.Now().UnixMilli() {
		return
	}

	err := s.calendar.DeleteEvent(ctx, interview.EventID)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "delete calendar event"))
	}
}

func (s *Scheduler) publish(ctx context.Context, eventType, interviewID, actor string) {
	if s.events == nil {
		return
	}

	err := s.events.Publish(ctx, pubsub.Event{
		Type:        eventType,
		InterviewID: interviewID,
		Actor:       actor,
		At:          s.clock.Now().UnixMilli(),
	})
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "publish lifecycle event"))
	}
}

func (s *Scheduler) notifyBooking(ctx context.Context, interview *models.Interview) {
	slot := interview.BookedSlot()
	if slot == nil {
		return
	}

	message := fmt.Sprintf("Mock interview `%s` is booked for %s", interview.Title, formatSlotTime(slot))
	s.notifyParticipants(ctx, interview, message)
}

// notifyCancellation tells a booked interviewer their slot is gone.
// A request without a booking disappears silently.
func (s *Scheduler) notifyCancellation(ctx context.Context, interview *models.Interview) {
	slot := interview.BookedSlot()
	if slot == nil || interview.Status != models.StatusAccepted {
		return
	}

	message := fmt.Sprintf("Mock interview `%s` scheduled for %s was cancelled", interview.Title, formatSlotTime(slot))
	s.notifyParticipants(ctx, interview, message)
}

func (s *Scheduler) notifyParticipants(ctx context.Context, interview *models.Interview, message string) {
	if s.notifier == nil {
		return
	}

	for _, id := range []string{interview.RequesterID, interview.InterviewedBy} {
		user, err := s.users.Find(ctx, id)
		if err != nil {
			s.log.Warn(errors.WrapFailf(err, "find user %q to notify", id))
			continue
		}
		if user == nil {
			continue
		}

		err = s.notifier.Notify(ctx, *user, message)
		if err != nil {
			s.log.Warn(errors.WrapFail(err, "notify participant"))
		}
	}
}

func formatSlotTime(slot *models.Slot) string {
	return time.UnixMilli(slot.Start).UTC().Format("02 Jan 2006 15:04 MST")
}

func (in RequestInput) validate() error {
	required := [...]struct {
		name  string
		value string
	}{
		{"userId", in.RequesterID},
		{"title", in.Title},
		{"description", in.Description},
		{"company", in.Company},
		{"role", in.Role},
		{"resume", in.ResumeRef},
	}

	for _, field := range required {
		if field.value == "" {
			return errors.Mark(errors.Errorf("missing required field %q", field.name), ErrValidation)
		}
	}

	if len(in.Slots) == 0 {
		return errors.Mark(errors.Error("at least one slot is required"), ErrValidation)
	}

	return validateSlots(in.Slots)
}

func validateSlots(slots []SlotInput) error {
	for _, slot := range slots {
		if slot.End <= slot.Start {
			return errors.Mark(errors.Errorf("slot [%d, %d) must end after it starts", slot.Start, slot.End), ErrValidation)
		}
	}
	return nil
}
