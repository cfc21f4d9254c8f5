package storage

import (
	"bytes"
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

func NewDrive(ctx context.Context, cfg Config, log logger.Logger) (*Drive, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gdrive.DriveFileScope},
	}

	src := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gdrive.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, errors.WrapFail(err, "create drive service")
	}

	return &Drive{
		svc:    svc,
		folder: cfg.Folder,
		log:    log.With("drive_storage"),
	}, nil
}

type Drive struct {
	svc    *gdrive.Service
	folder string
	log    logger.Logger
}

func (d *Drive) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	meta := &gdrive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{d.folder},
	}

	created, err := d.svc.Files.
		Create(meta).
		Media(bytes.NewReader(data)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.WrapFail(err, "upload file to drive")
	}

	d.log.Debugf("uploaded resume %s as %s", name, created.Id)
	return created.Id, nil
}

func (d *Drive) Replace(ctx context.Context, id, mimeType string, data []byte) error {
	_, err := d.svc.Files.
		Update(id, &gdrive.File{}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Context(ctx).
		Do()
	return errors.WrapFail(err, "replace file in drive")
}
