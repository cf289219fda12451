package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mbolis/hvac-backend/apperr"
	"github.com/mbolis/hvac-backend/model"
)

type Collection string

const (
	Quotes       Collection = "quotes"
	Contacts     Collection = "contacts"
	Testimonials Collection = "testimonials"
)

// Conn is a connection held for the duration of one request. Callers must
// Close it on every path.
type Conn struct {
	conn *sqlx.Conn
	now  func() time.Time
}

func (s *Store) Conn(ctx context.Context) (*Conn, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, apperr.Storage("db.conn", err)
	}
	return &Conn{conn: conn, now: s.Now}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return apperr.Storage("db.ping", s.db.PingContext(ctx))
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// Insert writes one row into coll, binding each column to the field of arg
// (a db-tagged struct or a map) with the same name. A failed write is rolled
// back before the error is returned.
func (c *Conn) Insert(ctx context.Context, coll Collection, columns []string, arg any) (id int64, err error) {
	op := "db.insert_" + string(coll)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		coll,
		strings.Join(columns, ", "),
		strings.Join(columns, ", :"),
	)

	tx, err := c.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, apperr.Storage(op, err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, apperr.Storage(op, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, apperr.Storage(op, err)
	}

	err = tx.Commit()
	if err != nil {
		return 0, apperr.Storage(op, err)
	}
	return id, nil
}

// Query selects every column of coll. where and orderBy are raw SQL
// fragments and may be empty. Rows are read lazily; close them when done.
func (c *Conn) Query(ctx context.Context, coll Collection, where, orderBy string, args ...any) (*sqlx.Rows, error) {
	query := "SELECT * FROM " + string(coll)
	if where != "" {
		query += " WHERE " + where
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := c.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage("db.query_"+string(coll), err)
	}
	return rows, nil
}

func (c *Conn) InsertQuote(ctx context.Context, q *model.QuoteRequest) error {
	q.Status = model.StatusPending
	q.CreatedAt = c.now()

	id, err := c.Insert(ctx, Quotes,
		[]string{"name", "email", "phone", "message", "service_type", "status", "created_at"},
		q,
	)
	if err != nil {
		return err
	}
	q.ID = id
	return nil
}

func (c *Conn) InsertContact(ctx context.Context, cs *model.ContactSubmission) error {
	cs.CreatedAt = c.now()

	id, err := c.Insert(ctx, Contacts,
		[]string{"name", "email", "phone", "message", "created_at"},
		cs,
	)
	if err != nil {
		return err
	}
	cs.ID = id
	return nil
}

func (c *Conn) InsertTestimonial(ctx context.Context, t *model.Testimonial) error {
	t.Approved = false
	t.CreatedAt = c.now()

	id, err := c.Insert(ctx, Testimonials,
		[]string{"name", "rating", "comment", "created_at", "approved"},
		t,
	)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// ApprovedTestimonials lists the testimonials with approved set, newest first.
func (c *Conn) ApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := c.Query(ctx, Testimonials, "approved = TRUE", "created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.StructScan(&t); err != nil {
			return nil, apperr.Storage("db.query_testimonials.scan", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("db.query_testimonials", err)
	}
	return testimonials, nil
}
