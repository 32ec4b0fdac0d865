package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"melodex/internal/auth"
	"melodex/internal/store"
)

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPayload struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" ||
		req.Phone == "" || req.DOB == "" || req.Gender == "" || req.Address == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	account := store.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Address:   req.Address,
	}

	if err := s.accounts.Register(r.Context(), account, req.Password); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			respondError(w, http.StatusBadRequest, "Email or phone number already exists")
			return
		}
		s.logger.Error().Err(err).Msg("register account")
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	respond(w, http.StatusCreated, "User registered successfully", nil, nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password is required")
		return
	}

	token, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, auth.ErrPasswordMismatch):
			respondError(w, http.StatusBadRequest, "Incorrect password")
		default:
			s.logger.Error().Err(err).Msg("login")
			respondError(w, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	respond(w, http.StatusOK, "Login Successful", tokenPayload{Token: token}, nil)
}

// handleCheckToken reports whether the presented token is currently valid.
// It is not behind the auth gate so that clients get the envelope either way.
func (s *Server) handleCheckToken(w http.ResponseWriter, r *http.Request) {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, err := s.tokens.Verify(raw); err != nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respond(w, http.StatusOK, "Authorized", nil, nil)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	accounts, total, err := s.accounts.List(r.Context(), pageWindow(page, limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("list accounts")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving users.")
		return
	}

	respond(w, http.StatusOK, "Users retrieved successfully.", accounts, listMetadata(total, page, limit))
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	account, err := s.accounts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found.")
			return
		}
		s.logger.Error().Err(err).Msg("get account")
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving the user.")
		return
	}

	respond(w, http.StatusOK, "User retrieved successfully.", account, nil)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	account := store.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Address:   req.Address,
	}

	if err := s.accounts.Update(r.Context(), id, account); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, store.ErrAccountExists):
			respondError(w, http.StatusBadRequest, "Email or phone number already exists")
		default:
			s.logger.Error().Err(err).Msg("update account")
			respondError(w, http.StatusInternalServerError, "An error occurred while updating the user.")
		}
		return
	}

	respond(w, http.StatusOK, "User updated successfully.", nil, nil)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.accounts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found.")
			return
		}
		s.logger.Error().Err(err).Msg("delete account")
		respondError(w, http.StatusInternalServerError, "An error occurred while deleting the user.")
		return
	}

	respond(w, http.StatusOK, "User deleted successfully.", nil, nil)
}
