package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSongsByArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, artist_id, genre, album_name, created_at, updated_at
		FROM songs
		WHERE artist_id = $1
		ORDER BY id
	`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "artist_id", "genre", "album_name", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Sinnerman", int64(3), "jazz", "Pastel Blues", now, now).
			AddRow(int64(2), "Feeling Good", int64(3), "jazz", "I Put a Spell on You", now, now))

	songs, err := s.SongsByArtist(context.Background(), 3)
	if err != nil {
		t.Fatalf("SongsByArtist error: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("len(songs) = %d, want 2", len(songs))
	}
	if songs[0].Title != "Sinnerman" || songs[0].ArtistID != 3 {
		t.Errorf("unexpected first song: %+v", songs[0])
	}
}

func TestSongByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery("SELECT id, title, artist_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := s.SongByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SongByID = %v, want ErrNotFound", err)
	}
}

func TestUpdateSongDoesNotTouchArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	// Only title, genre and album_name are rewritten; artist_id stays put.
	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE songs
		SET title = $1, genre = $2, album_name = $3, updated_at = NOW()
		WHERE id = $4
	`)).
		WithArgs("Sinnerman (Live)", "jazz", "Pastel Blues", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = s.UpdateSong(context.Background(), 1, Song{
		Title:     "Sinnerman (Live)",
		ArtistID:  999,
		Genre:     "jazz",
		AlbumName: "Pastel Blues",
	})
	if err != nil {
		t.Fatalf("UpdateSong error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteSongNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM songs WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteSong(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteSong = %v, want ErrNotFound", err)
	}
}
