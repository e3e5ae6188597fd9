package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/service"
	"github.com/MKhiriev/creator-hub/internal/store"
	"github.com/MKhiriev/creator-hub/internal/utils"
	"github.com/MKhiriev/creator-hub/internal/validators"
	"github.com/MKhiriev/creator-hub/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrProfileAlreadyExists:  http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrProfileNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON error body.
//
// Validation failures produce 400 with a per-field breakdown. Errors present
// in [errorStatusMap] keep their sentinel message. Anything else is logged
// and reported as a generic 500 so that internals do not leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.ErrorResponse{
			Message: "validation failed",
			Fields:  validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, status)
		return
	}

	message := err.Error()
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			message = target.Error()
			break
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
