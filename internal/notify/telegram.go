package notify

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/prepbuddy/prepbuddy/internal/repo/models"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

// Telegram sends one-way booking notifications to users
// that have linked a chat id.
type Telegram struct {
	bot *telebot.Bot
	log logger.Logger
}

func NewTelegram(cfg Config, log logger.Logger) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.PollInterval},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Telegram{
		bot: bot,
		log: log.With("telegram_notifier"),
	}, nil
}

func (t *Telegram) Notify(ctx context.Context, user models.User, message string) error {
	if user.Telegram == 0 {
		return nil
	}

	_, err := t.bot.Send(user, message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return errors.WrapFail(err, "send telegram message")
}
