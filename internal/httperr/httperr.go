// Package httperr maps domain error outcomes to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

func Status(err error) int {
	if _, ok := apperr.AsValidation(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, apperr.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflictRetryable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write responds with the status matching err. Client errors carry the error
// text, server errors only the given action description.
func Write(w http.ResponseWriter, err error, action string) {
	status := Status(err)
	switch status {
	case http.StatusInternalServerError:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "error, "+action+" failed", status)
	case http.StatusConflict:
		log.Warnf("%s, retries exhausted: %s", action, err)
		http.Error(w, "error, "+action+" conflicted with a concurrent update, try again", status)
	default:
		log.Debugf("%s: %s", action, err)
		http.Error(w, err.Error(), status)
	}
}
