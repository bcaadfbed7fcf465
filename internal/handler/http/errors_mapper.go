package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/service"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/internal/utils"
	"github.com/MKhiriev/beyond-catalog/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidQueryParameter:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrPasswordRequired:        http.StatusUnauthorized,
	service.ErrTokenVerificationFailed: http.StatusUnauthorized,
	service.ErrAuthMethodMismatch:      http.StatusUnauthorized,

	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrObjectNotFound:    http.StatusNotFound,
	store.ErrFavouriteNotFound: http.StatusNotFound,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrUsernameAlreadyExists:  http.StatusConflict,
	store.ErrUserModified:           http.StatusConflict,
	store.ErrObjectAlreadyExists:    http.StatusConflict,
	store.ErrFavouriteAlreadyExists: http.StatusConflict,
	store.ErrFavouritesModified:     http.StatusConflict,

	store.ErrStoreUnavailable: http.StatusInternalServerError,

	errMethodNotAllowed: http.StatusMethodNotAllowed,
	errRouteNotFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the mapped status. Internal failures are logged
// in full and reported to the client without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", "http.writeError").Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
