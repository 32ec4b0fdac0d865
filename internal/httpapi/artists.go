package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"melodex/internal/store"
)

type artistRequest struct {
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	FirstReleaseYear int    `json:"first_release_year"`
	AlbumsReleased   int    `json:"no_of_albums_released"`
}

func (req artistRequest) toArtist() store.Artist {
	return store.Artist{
		Name:             req.Name,
		DOB:              req.DOB,
		Gender:           req.Gender,
		Address:          req.Address,
		FirstReleaseYear: req.FirstReleaseYear,
		AlbumsReleased:   req.AlbumsReleased,
	}
}

func (req artistRequest) complete() bool {
	return req.Name != "" && req.DOB != "" && req.Gender != "" && req.Address != "" &&
		req.FirstReleaseYear != 0 && req.AlbumsReleased != 0
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !req.complete() {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if _, err := s.artists.Create(r.Context(), req.toArtist()); err != nil {
		s.logger.Error().Err(err).Msg("create artist")
		respondError(w, http.StatusInternalServerError, "Failed to register artist")
		return
	}

	respond(w, http.StatusCreated, "Artist registered successfully", nil, nil)
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	artists, total, err := s.artists.List(r.Context(), pageWindow(page, limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("list artists")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving artists.")
		return
	}

	respond(w, http.StatusOK, "Artists retrieved successfully.", artists, listMetadata(total, page, limit))
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artist not found.")
			return
		}
		s.logger.Error().Err(err).Msg("get artist")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving the artist.")
		return
	}

	respond(w, http.StatusOK, "Artist retrieved successfully.", artist, nil)
}

// handleArtistSongs lists the songs belonging to one artist.
func (s *Server) handleArtistSongs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	songs, err := s.artists.Songs(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("list artist songs")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving songs.")
		return
	}

	respond(w, http.StatusOK, "Songs retrieved successfully.", songs, nil)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := s.artists.Update(r.Context(), id, req.toArtist()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artist not found.")
			return
		}
		s.logger.Error().Err(err).Msg("update artist")
		respondError(w, http.StatusInternalServerError, "An error occurred while updating the artist.")
		return
	}

	respond(w, http.StatusOK, "Artist updated successfully.", nil, nil)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.artists.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Artist not found.")
			return
		}
		s.logger.Error().Err(err).Msg("delete artist")
		respondError(w, http.StatusInternalServerError, "An error occurred while deleting the artist.")
		return
	}

	respond(w, http.StatusOK, "Artist deleted successfully.", nil, nil)
}
