package database

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store is the single SQLite file holding quotes, contacts and testimonials.
type Store struct {
	db *sqlx.DB

	// Now stamps created_at on every insert.
	Now func() time.Time
}

// Open connects to the SQLite file at path and creates the tables that are
// missing. Opening an already initialized file leaves it untouched.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("opening db : %w", err)
	}

	// connections are not reused across requests
	db.SetMaxIdleConns(0)

	if err = bootstrap(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}, nil
}

func bootstrap(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema : %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("closing db : %w", err)
	}
	return nil
}
