package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeMatchNotFound       = "MATCH_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeInvalidPlayers      = "INVALID_PLAYERS"
	CodeInvalidTurnSource   = "INVALID_TURN_SOURCE"
	CodeInvalidBoardSize    = "INVALID_BOARD_SIZE"
	CodeUnknownLocale       = "UNKNOWN_LOCALE"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "No such player in this match"}}
	case errors.Is(err, model.ErrInvalidPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayers, "A match needs between 1 and 4 players"}}
	case errors.Is(err, model.ErrInvalidTurnSource):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTurnSource, "Turn source must be local or remote"}}
	case errors.Is(err, model.ErrInvalidBoardSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoardSize, "Invalid board size"}}
	case errors.Is(err, model.ErrUnknownLocale):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownLocale, err.Error()}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusNotFound, APIError{CodeDictionaryNotLoaded, "No dictionary loaded for this locale"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
