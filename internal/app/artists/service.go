package artists

import (
	"context"

	"melodex/internal/store"
)

// Store describes the persistence operations required by the artist service.
type Store interface {
	CreateArtist(ctx context.Context, a store.Artist) (int64, error)
	ArtistByID(ctx context.Context, id int64) (store.Artist, error)
	ListArtists(ctx context.Context, page store.Page) ([]store.Artist, int64, error)
	UpdateArtist(ctx context.Context, id int64, a store.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
	SongsByArtist(ctx context.Context, artistID int64) ([]store.Song, error)
}

// Service exposes artist catalogue workflows.
type Service interface {
	Create(ctx context.Context, a store.Artist) (int64, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	List(ctx context.Context, page store.Page) ([]store.Artist, int64, error)
	Update(ctx context.Context, id int64, a store.Artist) error
	Delete(ctx context.Context, id int64) error
	Songs(ctx context.Context, artistID int64) ([]store.Song, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, a store.Artist) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateArtist(ctx, a)
}

func (s *service) Get(ctx context.Context, id int64) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.ArtistByID(ctx, id)
}

func (s *service) List(ctx context.Context, page store.Page) ([]store.Artist, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return s.store.ListArtists(ctx, page)
}

func (s *service) Update(ctx context.Context, id int64, a store.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateArtist(ctx, id, a)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}

// Songs lists the tracks belonging to an artist. The artist itself is not
// looked up first; an unknown id simply yields an empty list.
func (s *service) Songs(ctx context.Context, artistID int64) ([]store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SongsByArtist(ctx, artistID)
}
