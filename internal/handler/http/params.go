package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/phototeka/internal/utils"
)

// idURLParam parses the {id} chi URL parameter as a positive int64.
func idURLParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

// currentUserID extracts the authenticated user's id placed in the request
// context by the auth middleware. A missing id means the handler is wired
// outside the authenticated group, which is a routing bug; the caller
// responds with 401 rather than panicking.
func currentUserID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
