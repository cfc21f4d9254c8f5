package calendar

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

// Gateway talks to Google Calendar. It owns the remote event lifecycle;
// callers own the persisted event reference.
type Gateway struct {
	svc        *gcal.Service
	calendarID string
	timeZone   string
	log        logger.Logger
}

func NewGateway(ctx context.Context, cfg Config, log logger.Logger) (*Gateway, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}

	src := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, errors.WrapFail(err, "create calendar service")
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &Gateway{
		svc:        svc,
		calendarID: calendarID,
		timeZone:   cfg.TimeZone,
		log:        log.With("calendar_gateway"),
	}, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, ev Event) (string, error) {
	created, err := g.svc.Events.
		Insert(g.calendarID, newEventPayload(ev, g.timeZone)).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.WrapFail(err, "insert calendar event")
	}

	g.log.Debugf("created calendar event %s", created.Id)
	return created.Id, nil
}

func (g *Gateway) UpdateEvent(ctx context.Context, eventRef string, ev Event) error {
	_, err := g.svc.Events.
		Update(g.calendarID, eventRef, newEventPayload(ev, g.timeZone)).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "update calendar event")
}

func (g *Gateway) DeleteEvent(ctx context.Context, eventRef string) error {
	err := g.svc.Events.
		Delete(g.calendarID, eventRef).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "delete calendar event")
}
