package handlers

import (
	"errors"
	"net/http"

	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/utils"
)

// Error kinds returned by handlers. Every failure is wrapped in an
// apiError carrying one of these so it can be mapped to a status code.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUpstream           = errors.New("upstream failure")
)

// Stable error codes sent as "code" in error bodies.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeInternal           = "internal_error"
)

type errorMapping struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorMapping{
	ErrValidation:         {http.StatusBadRequest, ErrCodeInvalidRequest},
	ErrInvalidCredentials: {http.StatusUnauthorized, ErrCodeInvalidCredentials},
	ErrNotFound:           {http.StatusNotFound, ErrCodeNotFound},
	ErrConflict:           {http.StatusConflict, ErrCodeConflict},
	ErrUpstream:           {http.StatusInternalServerError, ErrCodeInternal},
}

// apiError pairs a client-safe message with the underlying cause.
// Only message is ever written to the response.
type apiError struct {
	kind    error
	message string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func newAPIError(kind error, message string, cause error) *apiError {
	return &apiError{kind: kind, message: message, cause: cause}
}

func mappingFromError(err error) errorMapping {
	for target, m := range errorStatusMap {
		if errors.Is(err, target) {
			return m
		}
	}
	return errorMapping{http.StatusInternalServerError, ErrCodeInternal}
}

// writeError logs err with its cause and sends the stable message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	m := mappingFromError(err)

	message := "Internal server error"
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		message = apiErr.message
	}

	log := logger.FromRequest(r)
	if m.status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", m.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", m.status).Msg("request rejected")
	}

	utils.WriteErrorResponse(w, m.status, m.code, message)
}
