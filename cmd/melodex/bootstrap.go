package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"melodex/internal/auth"
	"melodex/internal/store"
)

// seedDemoData inserts a demo account and a small artist catalogue so a fresh
// instance has something to browse. Safe to run repeatedly.
func seedDemoData(ctx context.Context, dataStore *store.Store, logger zerolog.Logger) error {
	if err := ensureDemoAccount(ctx, dataStore); err != nil {
		return err
	}
	return ensureDemoCatalogue(ctx, dataStore, logger)
}

func ensureDemoAccount(ctx context.Context, dataStore *store.Store) error {
	account := store.Account{
		FirstName: "Demo",
		LastName:  "Listener",
		Email:     "demo@melodex.local",
		Phone:     "0000000000",
		DOB:       "1990-01-01",
		Gender:    "other",
		Address:   "1 Demo Street",
	}
	hash, err := auth.HashPassword("demo123")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	account.PasswordHash = hash

	_, err = dataStore.CreateAccount(ctx, account)
	if err != nil && !errors.Is(err, store.ErrAccountExists) {
		return fmt.Errorf("seed demo account: %w", err)
	}
	return nil
}

func ensureDemoCatalogue(ctx context.Context, dataStore *store.Store, logger zerolog.Logger) error {
	_, total, err := dataStore.ListArtists(ctx, store.Page{Limit: 1})
	if err != nil {
		return fmt.Errorf("check artist catalogue: %w", err)
	}
	if total > 0 {
		return nil
	}

	artistID, err := dataStore.CreateArtist(ctx, store.Artist{
		Name:             "The Placeholder Quartet",
		DOB:              "1975-06-15",
		Gender:           "other",
		Address:          "Studio City",
		FirstReleaseYear: 1998,
		AlbumsReleased:   4,
	})
	if err != nil {
		return fmt.Errorf("seed demo artist: %w", err)
	}

	demoSongs := []store.Song{
		{Title: "Opening Number", ArtistID: artistID, Genre: "jazz", AlbumName: "First Pressing"},
		{Title: "Side B Shuffle", ArtistID: artistID, Genre: "jazz", AlbumName: "First Pressing"},
	}
	for _, song := range demoSongs {
		if _, err := dataStore.CreateSong(ctx, song); err != nil {
			return fmt.Errorf("seed demo song: %w", err)
		}
	}

	logger.Info().Int64("artist_id", artistID).Msg("seeded demo catalogue")
	return nil
}
