package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	mng "github.com/prepbuddy/prepbuddy/pkg/mongotools"
)

func NewUsers(coll *mongo.Collection) models.UsersRepo {
	return mongoUsers{coll: coll}
}

type mongoUsers struct {
	coll *mongo.Collection
}

func (m mongoUsers) Find(ctx context.Context, id string) (*models.User, error) {
	r := m.coll.FindOne(ctx, bson.M{models.UserFieldID: id})
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find user by id")
	}

	var parsed models.User
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode user")
	}

	return &parsed, nil
}

func (m mongoUsers) EmailsOf(ctx context.Context, ids ...string) ([]string, error) {
	c, err := m.coll.Find(ctx, bson.M{models.UserFieldID: bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.WrapFail(err, "find users by ids")
	}

	found, err := mng.All[models.User](ctx, c)
	if err != nil {
		return nil, errors.WrapFail(err, "parse users")
	}

	byID := make(map[string]string, len(found))
	for _, u := range found {
		byID[u.ID] = u.Email
	}

	emails := make([]string, 0, len(ids))
	for _, id := range ids {
		email, ok := byID[id]
		if !ok {
			return nil, errors.Failf("resolve email for user %q", id)
		}
		emails = append(emails, email)
	}

	return emails, nil
}
