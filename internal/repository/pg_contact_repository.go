package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/bookly/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// sortColumns maps the sortable field names exposed to the dashboard onto
// real column names. Anything not in this map falls back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
	"status":    "status",
}

// sortColumn resolves a requested sort field to a safe column name.
func sortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return "created_at"
}

// buildWhere assembles the WHERE clause for the given filter. The search term
// matches name OR email OR message case-insensitively; status is an exact
// match. Returns the clause (possibly empty) and its positional arguments.
func buildWhere(f model.ContactFilter) (string, []any) {
	var conditions []string
	var args []any

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions,
			"(name ILIKE $"+n+" OR email ILIKE $"+n+" OR message ILIKE $"+n+")")
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Create inserts a new contacts row and populates c.ID and c.CreatedAt from
// the database RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message, status, tags)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Message, string(c.Status), c.Tags,
	).Scan(&c.ID, &c.CreatedAt)
}

// Count returns the number of contacts matching the filter.
func (r *PgContactRepository) Count(ctx context.Context, f model.ContactFilter) (int, error) {
	where, args := buildWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contacts "+where, args...).Scan(&total)
	return total, err
}

// List returns one page of contacts ordered by the requested field and
// direction. Only the dashboard columns are selected.
func (r *PgContactRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.Contact, error) {
	where, args := buildWhere(opts.Filter)

	dir := "DESC"
	if opts.Order == "asc" {
		dir = "ASC"
	}

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, model.PerPage, opts.Skip())

	query := `SELECT id, name, email, message, status, created_at
	          FROM contacts ` + where +
		` ORDER BY ` + sortColumn(opts.Sort) + ` ` + dir +
		` LIMIT $` + limitArg + ` OFFSET $` + offsetArg

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// FindAll returns every contact matching the filter, newest first. Used by
// the CSV export, which is never paginated.
func (r *PgContactRepository) FindAll(ctx context.Context, f model.ContactFilter) ([]*model.Contact, error) {
	where, args := buildWhere(f)

	query := `SELECT id, name, email, message, status, tags, created_at
	          FROM contacts ` + where + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Status, &c.Tags, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Delete removes the contact with the given id. Returns ErrNotFound when no
// row matched.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
