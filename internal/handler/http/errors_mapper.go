package http

import (
	"errors"
	"net/http"

	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/service"
	"github.com/avolkhin/phototeka/internal/store"
	"github.com/avolkhin/phototeka/internal/utils"
	"github.com/avolkhin/phototeka/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrTagAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrAlbumNotFound:     http.StatusNotFound,
	store.ErrPhotoNotFound:     http.StatusNotFound,
	store.ErrTagNotFound:       http.StatusNotFound,
	store.ErrInvalidMediaPath:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status via [statusFromError] and writes the
// uniform JSON error body. Internal errors are masked with the generic status
// text so storage details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	body := msg
	if status == http.StatusInternalServerError {
		body = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: body}, status)
}
