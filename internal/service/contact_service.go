package service

import (
	"context"

	"github.com/bookly/backend/internal/model"
)

// SubmitInput carries the raw public contact form fields.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps a form field name to its validation messages. A nil map
// means the input passed validation.
type FieldErrors map[string][]string

// ContactService coordinates validation, persistence and notification mail
// for contact submissions, and serves the admin listing/export/delete flows.
type ContactService interface {
	// Submit validates in and, when valid, persists a new record and sends
	// the notification email. A non-nil FieldErrors means validation failed
	// and nothing was stored or sent. A non-nil error means the input was
	// valid but persistence or notification failed; a notification failure
	// never rolls back the stored record.
	Submit(ctx context.Context, in SubmitInput) (FieldErrors, error)
	// List returns one page of submissions plus total/paging metadata. The
	// count and page queries run concurrently; totals may be transiently
	// inconsistent under concurrent writes.
	List(ctx context.Context, opts model.ListOptions) (*model.ContactPage, error)
	// Export returns every submission matching the filter, newest first.
	Export(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error)
	// Delete removes a submission by id.
	Delete(ctx context.Context, id string) error
}
