package storage

import "context"

// ResumeStore keeps uploaded resumes in an external document store.
// Returned ids are opaque; the scheduler embeds them into calendar
// event attachments without interpreting them.
type ResumeStore interface {
	Upload(ctx context.Context, name, mimeType string, data []byte) (id string, err error)
	Replace(ctx context.Context, id, mimeType string, data []byte) error
}
