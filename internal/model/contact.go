package model

import "time"

// ContactStatus is the workflow state of a contact submission.
type ContactStatus string

const (
	StatusNew        ContactStatus = "NEW"
	StatusInProgress ContactStatus = "IN_PROGRESS"
	StatusResolved   ContactStatus = "RESOLVED"
	StatusSpam       ContactStatus = "SPAM"
)

// Valid reports whether s is one of the four known statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusSpam:
		return true
	}
	return false
}

// DefaultTag is attached to every record created through the public form.
const DefaultTag = "contact-form"

// Contact is a message submitted through the public contact form.
// Records are created once and never edited; the admin dashboard can only
// read, export and delete them.
type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Tags      []string      `json:"tags,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ContactFilter narrows listing and export queries. Search matches name,
// email or message as a case-insensitive substring; Status, when set, must
// match exactly. Both combine with AND.
type ContactFilter struct {
	Search string
	Status ContactStatus
}

// PerPage is the fixed page size of the admin listing.
const PerPage = 10

// ListOptions carries filter, sort and pagination parameters for the admin
// listing. Page is 1-based.
type ListOptions struct {
	Filter ContactFilter
	Sort   string // sortable field name; default "createdAt"
	Order  string // "asc" | "desc"
	Page   int
}

// Skip returns the number of records preceding the requested page.
func (o ListOptions) Skip() int {
	return (o.Page - 1) * PerPage
}

// ContactPage is one page of listing results plus the echoed query state the
// dashboard needs to restore its controls.
type ContactPage struct {
	Contacts []*Contact    `json:"contacts"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PerPage  int           `json:"per_page"`
	HasNext  bool          `json:"has_next"`
	HasPrev  bool          `json:"has_prev"`
	Search   string        `json:"search,omitempty"`
	Status   ContactStatus `json:"status,omitempty"`
	Sort     string        `json:"sort"`
	Order    string        `json:"order"`
}
