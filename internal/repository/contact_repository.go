package repository

import (
	"context"

	"github.com/bookly/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Create inserts a new record and populates ID/CreatedAt from the database.
	Create(ctx context.Context, c *model.Contact) error
	// Count returns the number of records matching the filter.
	Count(ctx context.Context, f model.ContactFilter) (int, error)
	// List returns one page of records matching opts. Only the listing
	// columns are selected; Tags is left empty.
	List(ctx context.Context, opts model.ListOptions) ([]*model.Contact, error)
	// FindAll returns every record matching the filter, newest first.
	FindAll(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error)
	// Delete removes the record with the given id. Returns ErrNotFound when
	// no row matched.
	Delete(ctx context.Context, id string) error
}
