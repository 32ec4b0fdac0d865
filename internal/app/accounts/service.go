package accounts

import (
	"context"

	"melodex/internal/auth"
	"melodex/internal/store"
)

// Store describes the persistence operations required by the account service.
type Store interface {
	AccountExists(ctx context.Context, email, phone string) (bool, error)
	CreateAccount(ctx context.Context, a store.Account) (int64, error)
	AccountByEmail(ctx context.Context, email string) (store.Account, error)
	AccountByID(ctx context.Context, id int64) (store.Account, error)
	ListAccounts(ctx context.Context, page store.Page) ([]store.Account, int64, error)
	UpdateAccount(ctx context.Context, id int64, a store.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

// TokenIssuer mints a signed bearer token for an authenticated account.
type TokenIssuer interface {
	Issue(accountID int64, email string) (string, error)
}

// Service exposes account registration, login and admin workflows.
type Service interface {
	Register(ctx context.Context, a store.Account, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Get(ctx context.Context, id int64) (store.Account, error)
	List(ctx context.Context, page store.Page) ([]store.Account, int64, error)
	Update(ctx context.Context, id int64, a store.Account) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store  Store
	tokens TokenIssuer
}

// New wires a Service backed by the provided Store and token issuer.
func New(store Store, tokens TokenIssuer) Service {
	return &service{store: store, tokens: tokens}
}

// Register checks for an existing email or phone, hashes the password and
// inserts the account. The existence check and insert are not transactional;
// the unique constraints on accounts back it up under concurrency.
func (s *service) Register(ctx context.Context, a store.Account, password string) error {
	exists, err := s.store.AccountExists(ctx, a.Email, a.Phone)
	if err != nil {
		return err
	}
	if exists {
		return store.ErrAccountExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash

	_, err = s.store.CreateAccount(ctx, a)
	return err
}

// Login verifies credentials and returns a signed token carrying the
// account's id and email.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		// Burn a bcrypt comparison so an unknown email costs the same
		// as a wrong password.
		auth.VerifyDummyPassword(password)
		return "", err
	}

	if err := auth.VerifyPassword(password, account.PasswordHash); err != nil {
		return "", err
	}

	return s.tokens.Issue(account.ID, account.Email)
}

func (s *service) Get(ctx context.Context, id int64) (store.Account, error) {
	if err := ctx.Err(); err != nil {
		return store.Account{}, err
	}
	return s.store.AccountByID(ctx, id)
}

func (s *service) List(ctx context.Context, page store.Page) ([]store.Account, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return s.store.ListAccounts(ctx, page)
}

func (s *service) Update(ctx context.Context, id int64, a store.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateAccount(ctx, id, a)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteAccount(ctx, id)
}
