package notify

import (
	"context"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
)

func NewStub() stubNotifier {
	return stubNotifier{}
}

type stubNotifier struct{}

func (stubNotifier) Notify(ctx context.Context, user models.User, message string) error {
	return nil
}
