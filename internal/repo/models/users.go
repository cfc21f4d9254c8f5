package models

import (
	"context"
	"strconv"
)

type UsersRepo interface {
	// Find returns the user profile or nil when the id does not resolve.
	Find(ctx context.Context, id string) (*User, error)

	// EmailsOf resolves user ids to email addresses, preserving order.
	// Every id must resolve.
	EmailsOf(ctx context.Context, ids ...string) ([]string, error)
}

type User struct {
	ID        string `json:"id"        bson:"id"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName"  bson:"lastName"`
	Email     string `json:"email"     bson:"email"`

	// Telegram is the chat id for booking notifications, 0 when unknown.
	Telegram int64 `json:"telegram,omitempty" bson:"telegram,omitempty"`
}

func (u User) Recipient() string {
	if u.Telegram == 0 {
		return ""
	}

	return strconv.FormatInt(u.Telegram, 10)
}

const (
	UserFieldID        = "id"
	UserFieldFirstName = "firstName"
	UserFieldEmail     = "email"
	UserFieldTelegram  = "telegram"
)
