package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"melodex/internal/store"
)

type songRequest struct {
	Title     string `json:"title"`
	ArtistID  int64  `json:"artist_id"`
	Genre     string `json:"genre"`
	AlbumName string `json:"album_name"`
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Title == "" || req.ArtistID == 0 || req.Genre == "" || req.AlbumName == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	song := store.Song{
		Title:     req.Title,
		ArtistID:  req.ArtistID,
		Genre:     req.Genre,
		AlbumName: req.AlbumName,
	}

	if _, err := s.songs.Create(r.Context(), song); err != nil {
		s.logger.Error().Err(err).Msg("create song")
		respondError(w, http.StatusInternalServerError, "Failed to register song")
		return
	}

	respond(w, http.StatusCreated, "Song registered successfully", nil, nil)
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	songs, total, err := s.songs.List(r.Context(), pageWindow(page, limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("list songs")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving songs.")
		return
	}

	respond(w, http.StatusOK, "Songs retrieved successfully.", songs, listMetadata(total, page, limit))
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	song, err := s.songs.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Song not found.")
			return
		}
		s.logger.Error().Err(err).Msg("get song")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving the song.")
		return
	}

	respond(w, http.StatusOK, "Song retrieved successfully.", song, nil)
}

// handleUpdateSong rewrites a song's title, genre and album. Reassigning the
// owning artist is not supported.
func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Title == "" || req.Genre == "" || req.AlbumName == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	song := store.Song{
		Title:     req.Title,
		Genre:     req.Genre,
		AlbumName: req.AlbumName,
	}

	if err := s.songs.Update(r.Context(), id, song); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Song not found.")
			return
		}
		s.logger.Error().Err(err).Msg("update song")
		respondError(w, http.StatusInternalServerError, "Failed to update song")
		return
	}

	respond(w, http.StatusOK, "Song updated successfully", nil, nil)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.songs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Song not found.")
			return
		}
		s.logger.Error().Err(err).Msg("delete song")
		respondError(w, http.StatusInternalServerError, "An error occurred while deleting the song.")
		return
	}

	respond(w, http.StatusOK, "Song deleted successfully.", nil, nil)
}
