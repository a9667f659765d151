package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/freedict"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeNoAudio             = "NO_AUDIO"
	CodeBadUpstream         = "BAD_UPSTREAM"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamTimeout     = "UPSTREAM_TIMEOUT"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeInvalidBody         = "INVALID_BODY"
	CodeInternal            = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// classify maps adapter errors to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, freedict.ErrLookupNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, freedict.ErrNoAudioAvailable):
		return http.StatusUnprocessableEntity, CodeNoAudio
	case errors.Is(err, freedict.ErrUnsupportedLanguage):
		return http.StatusBadRequest, CodeUnsupportedLanguage
	case errors.Is(err, freedict.ErrMalformedResponse):
		return http.StatusBadGateway, CodeBadUpstream
	case errors.Is(err, freedict.ErrTransport):
		if isTimeout(err) {
			return http.StatusGatewayTimeout, CodeUpstreamTimeout
		}
		return http.StatusBadGateway, CodeUpstreamUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
