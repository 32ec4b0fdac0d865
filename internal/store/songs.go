package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Song represents a track belonging to an artist.
type Song struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ArtistID  int64     `json:"artist_id"`
	Genre     string    `json:"genre"`
	AlbumName string    `json:"album_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSong inserts a new song row.
func (s *Store) CreateSong(ctx context.Context, song Song) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (title, artist_id, genre, album_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, song.Title, song.ArtistID, song.Genre, song.AlbumName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert song: %w", err)
	}
	return id, nil
}

// SongByID fetches a single song.
func (s *Store) SongByID(ctx context.Context, id int64) (Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, artist_id, genre, album_name, created_at, updated_at
		FROM songs
		WHERE id = $1
	`, id).Scan(&song.ID, &song.Title, &song.ArtistID, &song.Genre, &song.AlbumName,
		&song.CreatedAt, &song.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Song{}, ErrNotFound
		}
		return Song{}, fmt.Errorf("lookup song: %w", err)
	}
	return song, nil
}

// ListSongs returns one page of songs plus the total row count.
func (s *Store) ListSongs(ctx context.Context, page Page) ([]Song, int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count songs: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, artist_id, genre, album_name, created_at, updated_at
		FROM songs
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	songs, err := scanSongs(rows)
	if err != nil {
		return nil, 0, err
	}
	return songs, total, nil
}

// SongsByArtist returns every song owned by the given artist.
func (s *Store) SongsByArtist(ctx context.Context, artistID int64) ([]Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, artist_id, genre, album_name, created_at, updated_at
		FROM songs
		WHERE artist_id = $1
		ORDER BY id
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select songs by artist: %w", err)
	}
	defer rows.Close()

	return scanSongs(rows)
}

// UpdateSong rewrites a song's fields. The owning artist is deliberately not
// reassignable through update.
func (s *Store) UpdateSong(ctx context.Context, id int64, song Song) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET title = $1, genre = $2, album_name = $3, updated_at = NOW()
		WHERE id = $4
	`, song.Title, song.Genre, song.AlbumName, id)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	return requireRow(res, "update song")
}

// DeleteSong removes a song row.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	return requireRow(res, "delete song")
}

func scanSongs(rows *sql.Rows) ([]Song, error) {
	songs := []Song{}
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.ArtistID, &song.Genre,
			&song.AlbumName, &song.CreatedAt, &song.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}
