package httpapi

import (
	"net/http"
	"strconv"
)

// pathID parses the {id} path segment. A non-numeric id cannot match any
// row, so it reports not found rather than a validation error.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusNotFound, "Resource not found.")
		return 0, false
	}
	return id, true
}
