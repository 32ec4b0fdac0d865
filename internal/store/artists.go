package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Artist represents a music artist profile.
type Artist struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	DOB              string    `json:"dob"`
	Gender           string    `json:"gender"`
	Address          string    `json:"address"`
	FirstReleaseYear int       `json:"first_release_year"`
	AlbumsReleased   int       `json:"no_of_albums_released"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateArtist inserts a new artist row.
func (s *Store) CreateArtist(ctx context.Context, a Artist) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, dob, gender, address, first_release_year, albums_released)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.Name, a.DOB, a.Gender, a.Address, a.FirstReleaseYear, a.AlbumsReleased).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert artist: %w", err)
	}
	return id, nil
}

// ArtistByID fetches a single artist.
func (s *Store) ArtistByID(ctx context.Context, id int64) (Artist, error) {
	var a Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, dob, gender, address, first_release_year, albums_released, created_at, updated_at
		FROM artists
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.DOB, &a.Gender, &a.Address,
		&a.FirstReleaseYear, &a.AlbumsReleased, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrNotFound
		}
		return Artist{}, fmt.Errorf("lookup artist: %w", err)
	}
	return a, nil
}

// ListArtists returns one page of artists plus the total row count.
func (s *Store) ListArtists(ctx context.Context, page Page) ([]Artist, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artists: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, dob, gender, address, first_release_year, albums_released, created_at, updated_at
		FROM artists
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []Artist{}
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.DOB, &a.Gender, &a.Address,
			&a.FirstReleaseYear, &a.AlbumsReleased, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, total, nil
}

// UpdateArtist rewrites every mutable field of an artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, a Artist) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE artists
		SET name = $1, dob = $2, gender = $3, address = $4, first_release_year = $5, albums_released = $6, updated_at = NOW()
		WHERE id = $7
	`, a.Name, a.DOB, a.Gender, a.Address, a.FirstReleaseYear, a.AlbumsReleased, id)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return requireRow(res, "update artist")
}

// DeleteArtist removes an artist row. Songs keep their artist_id; referential
// integrity between songs and artists is not enforced at this layer.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return requireRow(res, "delete artist")
}
