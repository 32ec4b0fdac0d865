package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals no row matched the requested identifier.
	ErrNotFound = errors.New("not found")
	// ErrAccountExists signals the email or phone is already registered.
	ErrAccountExists = errors.New("account already exists")
)

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
