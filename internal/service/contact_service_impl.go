package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/bookly/backend/internal/mail"
	"github.com/bookly/backend/internal/model"
	"github.com/bookly/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

const notificationSubject = "New Contact Form Submission"

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	mailer     mail.Mailer
	adminEmail string
}

// NewContactService creates a ContactService backed by the given repository
// and mailer. Notification emails go to adminEmail.
func NewContactService(repo repository.ContactRepository, mailer mail.Mailer, adminEmail string) ContactService {
	return &contactServiceImpl{repo: repo, mailer: mailer, adminEmail: adminEmail}
}

// Submit validates the form input, stores a new record with status NEW and
// the default tag, then sends the notification email. Storage and mail are
// two independent steps: a mail failure is reported but the record stays.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (FieldErrors, error) {
	if errs := validateSubmission(in); errs != nil {
		return errs, nil
	}

	c := &model.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Status:  model.StatusNew,
		Tags:    []string{model.DefaultTag},
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	if err := s.mailer.Send(ctx, notificationMessage(s.adminEmail, in)); err != nil {
		slog.Error("contact notification mail failed", "contact_id", c.ID, "error", err)
		return nil, fmt.Errorf("send notification: %w", err)
	}
	return nil, nil
}

// notificationMessage builds the admin notification for a submission, with
// Reply-To pointing at the submitter.
func notificationMessage(to string, in SubmitInput) mail.Message {
	text := strings.Join([]string{
		"Name: " + in.Name,
		"Email: " + in.Email,
		"",
		"Message:",
		in.Message,
	}, "\n")

	htmlBody := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(in.Name),
		html.EscapeString(in.Email), html.EscapeString(in.Email),
		strings.ReplaceAll(html.EscapeString(in.Message), "\n", "<br>"),
	)

	return mail.Message{
		To:      to,
		ReplyTo: in.Email,
		Subject: notificationSubject,
		Text:    text,
		HTML:    htmlBody,
	}
}

// List normalizes the listing options, then runs the count and page queries
// concurrently. The two reads are not a snapshot; a concurrent write between
// them can skew total/has_next by one, which the dashboard tolerates.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ListOptions) (*model.ContactPage, error) {
	opts = normalizeOptions(opts)

	var (
		total    int
		contacts []*model.Contact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, opts.Filter)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.repo.List(gctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if contacts == nil {
		contacts = []*model.Contact{}
	}

	return &model.ContactPage{
		Contacts: contacts,
		Total:    total,
		Page:     opts.Page,
		PerPage:  model.PerPage,
		HasNext:  opts.Skip()+model.PerPage < total,
		HasPrev:  opts.Page > 1,
		Search:   opts.Filter.Search,
		Status:   opts.Filter.Status,
		Sort:     opts.Sort,
		Order:    opts.Order,
	}, nil
}

// normalizeOptions applies the listing defaults: page floor 1, sort
// createdAt, order desc unless asc was requested, and drops an unknown
// status filter.
func normalizeOptions(opts model.ListOptions) model.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if _, ok := sortableFields[opts.Sort]; !ok {
		opts.Sort = "createdAt"
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}
	if opts.Filter.Status != "" && !opts.Filter.Status.Valid() {
		opts.Filter.Status = ""
	}
	return opts
}

// sortableFields are the listing fields the dashboard may order by.
var sortableFields = map[string]struct{}{
	"createdAt": {},
	"name":      {},
	"email":     {},
	"status":    {},
}

// Export returns every submission matching the filter, newest first. Unknown
// status values are dropped the same way the listing drops them.
func (s *contactServiceImpl) Export(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error) {
	if f.Status != "" && !f.Status.Valid() {
		f.Status = ""
	}
	return s.repo.FindAll(ctx, f)
}

// Delete removes a submission by id.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
