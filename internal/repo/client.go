package repo

import (
	"context"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
)

type Client interface {
	Interviews() models.InterviewsRepo
	Users() models.UsersRepo

	Close(ctx context.Context) error
}
