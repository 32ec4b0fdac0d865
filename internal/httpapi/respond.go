package httpapi

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform response shape returned by every endpoint.
type envelope struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Data     any       `json:"data,omitempty"`
	Metadata *metadata `json:"metadata,omitempty"`
}

// metadata describes a windowed list result.
type metadata struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respond sends a success envelope with optional data and metadata.
func respond(w http.ResponseWriter, status int, message string, data any, meta *metadata) {
	writeJSON(w, status, envelope{
		Success:  true,
		Message:  message,
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends a failure envelope. Only the human-readable message
// reaches the client; underlying errors stay in the server log.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{
		Success: false,
		Message: message,
	})
}
