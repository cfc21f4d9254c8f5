package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
	mng "github.com/prepbuddy/prepbuddy/pkg/mongotools"
)

func NewInterviews(coll *mongo.Collection, log logger.Logger) models.InterviewsRepo {
	return mongoInterviews{
		coll: coll,
		log:  log.With("mongo_interviews"),
	}
}

type mongoInterviews struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m mongoInterviews) Insert(ctx context.Context, interview models.Interview) error {
	_, err := m.coll.InsertOne(ctx, interview)
	return errors.WrapFail(err, "insert interview")
}

func (m mongoInterviews) Find(ctx context.Context, id string) (*models.Interview, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var parsed models.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &parsed, nil
}

func (m mongoInterviews) FindByRequester(
	ctx context.Context,
	userID string,
	status *models.Status,
) ([]models.Interview, error) {
	filter := bson.M{models.InterviewFieldRequester: userID}
	if status != nil {
		filter[models.InterviewFieldStatus] = *status
	}

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews by requester")
	}

	parsed, err := mng.All[models.Interview](ctx, c)
	return parsed, errors.WrapFail(err, "parse interviews")
}

func (m mongoInterviews) FindTaken(
	ctx context.Context,
	interviewerID string,
	status *models.Status,
) ([]models.Interview, error) {
	// An interviewer browsing REQUESTED sees every open request,
	// not just the ones already assigned to them.
	filter := bson.M{}
	if status != nil && *status == models.StatusRequested {
		filter[models.InterviewFieldStatus] = models.StatusRequested
	} else {
		filter[models.InterviewFieldInterviewedBy] = interviewerID
		if status != nil {
			filter[models.InterviewFieldStatus] = *status
		}
	}

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find taken interviews")
	}

	parsed, err := mng.All[models.Interview](ctx, c)
	return parsed, errors.WrapFail(err, "parse interviews")
}

func (m mongoInterviews) FindByParticipant(
	ctx context.Context,
	userID string,
	statuses ...models.Status,
) ([]models.Interview, error) {
	filter := bson.M{
		"$or": []bson.M{
			{models.InterviewFieldRequester: userID},
			{models.InterviewFieldInterviewedBy: userID},
		},
	}
	if len(statuses) > 0 {
		filter[models.InterviewFieldStatus] = bson.M{"$in": statuses}
	}

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews by participant")
	}

	parsed, err := mng.All[models.Interview](ctx, c)
	return parsed, errors.WrapFail(err, "parse interviews")
}

func (m mongoInterviews) Update(
	ctx context.Context,
	id string,
	patch models.InterviewPatch,
) (*models.Interview, error) {
	update := mng.SetAll(
		mng.Field(models.InterviewFieldTitle, patch.Title),
		mng.Field(models.InterviewFieldDescription, patch.Description),
		mng.Field(models.InterviewFieldCompany, patch.Company),
		mng.Field(models.InterviewFieldRole, patch.Role),
		mng.Field(models.InterviewFieldResume, patch.Resume),
		mng.Field(models.InterviewFieldSlots, patch.Slots),
		mng.Field(models.InterviewFieldUpdatedAt, &patch.UpdatedAt),
	)

	r := m.coll.FindOneAndUpdate(
		ctx,
		mng.ID(id),
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return m.decodeResult(r, "update interview")
}

func (m mongoInterviews) BookSlot(
	ctx context.Context,
	id, slotID, interviewerID string,
	at int64,
) (*models.Interview, error) {
	bookedPath := mng.Path(models.InterviewFieldSlots, models.SlotFieldBooked)

	// The guard makes concurrent accepts lose cleanly: only a REQUESTED
	// interview with the slot offered and nothing booked yet matches.
	filter := bson.M{
		models.InterviewFieldID:     id,
		models.InterviewFieldStatus: models.StatusRequested,
		bookedPath:                  bson.M{"$ne": true},
		models.InterviewFieldSlots: bson.M{
			"$elemMatch": bson.M{models.SlotFieldID: slotID},
		},
	}

	update := bson.M{"$set": bson.M{
		models.InterviewFieldStatus:        models.StatusAccepted,
		models.InterviewFieldInterviewedBy: interviewerID,
		models.InterviewFieldUpdatedAt:     at,
		models.InterviewFieldSlots + ".$[s]." + models.SlotFieldBooked: true,
	}}

	opts := options.FindOneAndUpdate().
		SetArrayFilters(options.ArrayFilters{
			Filters: []any{bson.M{"s." + models.SlotFieldID: slotID}},
		}).
		SetReturnDocument(options.After)

	r := m.coll.FindOneAndUpdate(ctx, filter, update, opts)
	return m.decodeResult(r, "book slot")
}

func (m mongoInterviews) SetEventRef(ctx context.Context, id, eventRef string, at int64) error {
	_, err := m.coll.UpdateOne(
		ctx,
		mng.ID(id),
		bson.M{"$set": bson.M{
			models.InterviewFieldEventID:   eventRef,
			models.InterviewFieldUpdatedAt: at,
		}},
	)
	return errors.WrapFail(err, "set calendar event ref")
}

func (m mongoInterviews) SetStatus(
	ctx context.Context,
	id string,
	from, to models.Status,
	at int64,
) (*models.Interview, error) {
	filter := bson.M{
		models.InterviewFieldID:     id,
		models.InterviewFieldStatus: from,
	}

	update := bson.M{"$set": bson.M{
		models.InterviewFieldStatus:    to,
		models.InterviewFieldUpdatedAt: at,
	}}

	r := m.coll.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return m.decodeResult(r, "set status")
}

func (m mongoInterviews) SetFeedback(
	ctx context.Context,
	id, feedback string,
	at int64,
) (*models.Interview, error) {
	filter := bson.M{
		models.InterviewFieldID:     id,
		models.InterviewFieldStatus: models.StatusAccepted,
	}

	update := bson.M{"$set": bson.M{
		models.InterviewFieldFeedback:   feedback,
		models.InterviewFieldFeedbackAt: at,
		models.InterviewFieldStatus:     models.StatusCompleted,
		models.InterviewFieldUpdatedAt:  at,
	}}

	r := m.coll.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return m.decodeResult(r, "set feedback")
}

func (m mongoInterviews) Delete(ctx context.Context, id string) (*models.Interview, error) {
	r := m.coll.FindOneAndDelete(ctx, mng.ID(id))
	return m.decodeResult(r, "delete interview")
}

func (m mongoInterviews) decodeResult(r *mongo.SingleResult, op string) (*models.Interview, error) {
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, op)
	}

	var parsed models.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFailf(err, "decode interview after %q", op)
	}

	return &parsed, nil
}
