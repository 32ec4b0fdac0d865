package httpapi

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"melodex/internal/auth"
	"melodex/internal/store"
)

// AccountService captures the account-facing operations needed by the HTTP handlers.
type AccountService interface {
	Register(ctx context.Context, a store.Account, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Get(ctx context.Context, id int64) (store.Account, error)
	List(ctx context.Context, page store.Page) ([]store.Account, int64, error)
	Update(ctx context.Context, id int64, a store.Account) error
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes artist catalogue workflows.
type ArtistService interface {
	Create(ctx context.Context, a store.Artist) (int64, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	List(ctx context.Context, page store.Page) ([]store.Artist, int64, error)
	Update(ctx context.Context, id int64, a store.Artist) error
	Delete(ctx context.Context, id int64) error
	Songs(ctx context.Context, artistID int64) ([]store.Song, error)
}

// SongService coordinates track-level operations.
type SongService interface {
	Create(ctx context.Context, song store.Song) (int64, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	List(ctx context.Context, page store.Page) ([]store.Song, int64, error)
	Update(ctx context.Context, id int64, song store.Song) error
	Delete(ctx context.Context, id int64) error
}

// TokenVerifier validates a presented bearer token and yields its claims.
type TokenVerifier interface {
	Verify(raw string) (auth.Claims, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	accounts AccountService
	artists  ArtistService
	songs    SongService
	tokens   TokenVerifier
	logger   zerolog.Logger
}

// New configures a Server with the given services and token verifier.
func New(accounts AccountService, artists ArtistService, songs SongService, tokens TokenVerifier, logger zerolog.Logger) *Server {
	return &Server{
		accounts: accounts,
		artists:  artists,
		songs:    songs,
		tokens:   tokens,
		logger:   logger,
	}
}

// Routes exposes the HTTP handlers for authentication and resource management.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /check-token", s.handleCheckToken)

	// Artist routes
	mux.HandleFunc("POST /artist", s.requireAuth(s.handleCreateArtist))
	mux.HandleFunc("GET /artist", s.requireAuth(s.handleListArtists))
	mux.HandleFunc("GET /artist/{id}", s.requireAuth(s.handleGetArtist))
	mux.HandleFunc("PUT /artist/{id}", s.requireAuth(s.handleUpdateArtist))
	mux.HandleFunc("DELETE /artist/{id}", s.requireAuth(s.handleDeleteArtist))
	mux.HandleFunc("GET /artist/song/{id}", s.requireAuth(s.handleArtistSongs))

	// Song routes
	mux.HandleFunc("POST /song", s.requireAuth(s.handleCreateSong))
	mux.HandleFunc("GET /song", s.requireAuth(s.handleListSongs))
	mux.HandleFunc("GET /song/{id}", s.requireAuth(s.handleGetSong))
	mux.HandleFunc("PUT /song/{id}", s.requireAuth(s.handleUpdateSong))
	mux.HandleFunc("DELETE /song/{id}", s.requireAuth(s.handleDeleteSong))

	// Account admin routes. There is no POST: registration is the only
	// creation path.
	mux.HandleFunc("GET /user", s.requireAuth(s.handleListAccounts))
	mux.HandleFunc("GET /user/{id}", s.requireAuth(s.handleGetAccount))
	mux.HandleFunc("PUT /user/{id}", s.requireAuth(s.handleUpdateAccount))
	mux.HandleFunc("DELETE /user/{id}", s.requireAuth(s.handleDeleteAccount))

	return mux
}

type claimsContextKey struct{}

// requireAuth verifies the Authorization header before invoking the handler.
// The header carries the raw signed token, without a "Bearer " prefix.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			respondError(w, http.StatusUnauthorized, "No token provided.")
			return
		}

		claims, err := s.tokens.Verify(raw)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext extracts the verified token claims attached by requireAuth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(auth.Claims)
	return claims, ok
}
