package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repomongo "github.com/prepbuddy/prepbuddy/internal/repo/internal/mongo"
	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

func NewMongoClient(
	ctx context.Context,
	log logger.Logger,
	cfg MongoConfig,
) (Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)
	return &mongoClient{
		c:          client,
		interviews: repomongo.NewInterviews(db.Collection(cfg.Sources.Interviews), log),
		users:      repomongo.NewUsers(db.Collection(cfg.Sources.Users)),
	}, nil
}

type mongoClient struct {
	c          *mongo.Client
	interviews models.InterviewsRepo
	users      models.UsersRepo
}

func (m *mongoClient) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *mongoClient) Users() models.UsersRepo {
	return m.users
}

func (m *mongoClient) Close(ctx context.Context) error {
	err := m.c.Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
