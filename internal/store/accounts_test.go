package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestAccountExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE email = $1 OR phone = $2
		)
	`)).
		WithArgs("a@x.com", "1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.AccountExists(context.Background(), "a@x.com", "1")
	if err != nil {
		t.Fatalf("AccountExists error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists = true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAccountSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO accounts (first_name, last_name, email, phone, password_hash, dob, gender, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`)).
		WithArgs("Ada", "Lovelace", "a@x.com", "1", "$2a$10$hash", "1990-01-01", "female", "1 Main St").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := s.CreateAccount(context.Background(), Account{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "a@x.com",
		Phone:        "1",
		PasswordHash: "$2a$10$hash",
		DOB:          "1990-01-01",
		Gender:       "female",
		Address:      "1 Main St",
	})
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d, want 7", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAccountUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = s.CreateAccount(context.Background(), Account{Email: "a@x.com", Phone: "1"})
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("CreateAccount = %v, want ErrAccountExists", err)
	}
}

func TestAccountByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("SELECT id, first_name").
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = s.AccountByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AccountByEmail = %v, want ErrNotFound", err)
	}
}

func TestListAccountsPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM accounts`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))

	mock.ExpectQuery("SELECT id, first_name, last_name, email, phone, dob, gender, address, created_at, updated_at").
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone", "dob", "gender", "address", "created_at", "updated_at",
		}).
			AddRow(int64(21), "A", "B", "a@x.com", "21", "1990-01-01", "other", "addr", now, now).
			AddRow(int64(22), "C", "D", "c@x.com", "22", "1991-01-01", "other", "addr", now, now))

	accounts, total, err := s.ListAccounts(context.Background(), Page{Limit: 10, Offset: 20})
	if err != nil {
		t.Fatalf("ListAccounts error: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(accounts) != 2 {
		t.Errorf("len(accounts) = %d, want 2", len(accounts))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAccountNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.UpdateAccount(context.Background(), 99, Account{Email: "a@x.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateAccount = %v, want ErrNotFound", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM accounts WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteAccount(context.Background(), 5); err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM accounts WHERE id = $1`)).
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteAccount(context.Background(), 6); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteAccount on missing row = %v, want ErrNotFound", err)
	}
}
