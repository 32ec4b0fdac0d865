package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Account represents a registered user of the API.
type Account struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	DOB          string    `json:"dob"`
	Gender       string    `json:"gender"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountExists reports whether any account already uses the email or phone.
func (s *Store) AccountExists(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE email = $1 OR phone = $2
		)
	`, email, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account exists: %w", err)
	}
	return exists, nil
}

// CreateAccount inserts a new account row. The uniqueness constraints on
// email and phone also catch the race where two registrations pass the
// existence check concurrently.
func (s *Store) CreateAccount(ctx context.Context, a Account) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (first_name, last_name, email, phone, password_hash, dob, gender, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, a.FirstName, a.LastName, a.Email, a.Phone, a.PasswordHash, a.DOB, a.Gender, a.Address).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAccountExists
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}

// AccountByEmail fetches an account including its password hash for login.
func (s *Store) AccountByEmail(ctx context.Context, email string) (Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, password_hash, dob, gender, address, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.PasswordHash,
		&a.DOB, &a.Gender, &a.Address, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("lookup account by email: %w", err)
	}
	return a, nil
}

// AccountByID fetches a single account.
func (s *Store) AccountByID(ctx context.Context, id int64) (Account, error) {
	var a Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, password_hash, dob, gender, address, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.PasswordHash,
		&a.DOB, &a.Gender, &a.Address, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("lookup account: %w", err)
	}
	return a, nil
}

// ListAccounts returns one page of accounts plus the total row count.
func (s *Store) ListAccounts(ctx context.Context, page Page) ([]Account, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, dob, gender, address, created_at, updated_at
		FROM accounts
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	accounts := []Account{}
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.DOB, &a.Gender, &a.Address, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, total, nil
}

// UpdateAccount rewrites every mutable field of an account.
func (s *Store) UpdateAccount(ctx context.Context, id int64, a Account) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, dob = $5, gender = $6, address = $7, updated_at = NOW()
		WHERE id = $8
	`, a.FirstName, a.LastName, a.Email, a.Phone, a.DOB, a.Gender, a.Address, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAccountExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res, "update account")
}

// DeleteAccount removes an account row.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireRow(res, "delete account")
}

// requireRow maps a zero-row result to ErrNotFound.
func requireRow(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
