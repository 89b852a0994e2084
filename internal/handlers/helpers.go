package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseID reads a positive integer URL parameter.
// IDs are integers as json-server assigns them.
func parseID(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
