package songs

import (
	"context"

	"melodex/internal/store"
)

// Store describes the persistence operations required by the song service.
type Store interface {
	CreateSong(ctx context.Context, song store.Song) (int64, error)
	SongByID(ctx context.Context, id int64) (store.Song, error)
	ListSongs(ctx context.Context, page store.Page) ([]store.Song, int64, error)
	UpdateSong(ctx context.Context, id int64, song store.Song) error
	DeleteSong(ctx context.Context, id int64) error
}

// Service coordinates track-level operations.
type Service interface {
	Create(ctx context.Context, song store.Song) (int64, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	List(ctx context.Context, page store.Page) ([]store.Song, int64, error)
	Update(ctx context.Context, id int64, song store.Song) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, song store.Song) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.CreateSong(ctx, song)
}

func (s *service) Get(ctx context.Context, id int64) (store.Song, error) {
	if err := ctx.Err(); err != nil {
		return store.Song{}, err
	}
	return s.store.SongByID(ctx, id)
}

func (s *service) List(ctx context.Context, page store.Page) ([]store.Song, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return s.store.ListSongs(ctx, page)
}

func (s *service) Update(ctx context.Context, id int64, song store.Song) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateSong(ctx, id, song)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSong(ctx, id)
}
