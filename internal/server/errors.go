package server

import (
	"errors"
	"net/http"

	"gamelog-tracker/internal/api"
	"gamelog-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

func badRequest(message string) error {
	return &badRequestError{message: message}
}

// writeError maps an error to a status code. Anything unrecognised is logged and hidden behind
// a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		badReq   *badRequestError
		maxBytes *http.MaxBytesError
	)

	switch {
	case errors.As(err, &badReq):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Name: "BadRequestError", Message: badReq.message})
	case errors.As(err, &maxBytes):
		writeJSON(w, r, http.StatusRequestEntityTooLarge, errorResponse{Name: "PayloadTooLargeError", Message: "Uploaded file is too large"})
	case errors.Is(err, domain.ErrEntityNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Name: "EntityNotFoundError", Message: err.Error()})
	case errors.Is(err, domain.ErrEntityAlreadyExists):
		writeJSON(w, r, http.StatusConflict, errorResponse{Name: "EntityAlreadyExistsError", Message: err.Error()})
	case errors.Is(err, api.ErrInvalidURL):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Name: "BadRequestError", Message: api.ErrInvalidURL.Error()})
	case errors.Is(err, api.ErrRemoteFetch):
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("remote log fetch failed")
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Name: "RemoteFetchError", Message: api.ErrRemoteFetch.Error()})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Name: "InternalServerError", Message: "Internal server error"})
	}
}
