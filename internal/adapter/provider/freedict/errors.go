package freedict

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Every typed error below unwraps to one of them.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrTransport           = errors.New("transport error")
	ErrLookupNotFound      = errors.New("lookup not found")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrNoAudioAvailable    = errors.New("no audio available")
)

// UnsupportedLanguageError is returned when a language code is not in the supported set.
// The client configuration is left unchanged.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("freedict: language %q is not supported", e.Code)
}

func (e *UnsupportedLanguageError) Unwrap() error { return ErrUnsupportedLanguage }

// TransportError reports a failed exchange with the upstream service: the request
// could not be built or sent, the body could not be read, or the status was unexpected.
// StatusCode is zero when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("freedict: %s: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("freedict: %s: unexpected status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("freedict: %s failed", e.Op)
	}
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// LookupNotFoundError is returned when the upstream service has no entry for the word.
// Title and Message carry the upstream explanation when one was sent.
type LookupNotFoundError struct {
	Word    string
	Title   string
	Message string
}

func (e *LookupNotFoundError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("freedict: %q not found: %s", e.Word, e.Title)
	}
	return fmt.Sprintf("freedict: %q not found", e.Word)
}

func (e *LookupNotFoundError) Unwrap() error { return ErrLookupNotFound }

// MalformedResponseError is returned when the response body does not match the
// expected payload shape.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("freedict: malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("freedict: malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedResponse}
	}
	return []error{ErrMalformedResponse, e.Err}
}

// NoAudioAvailableError is returned when no phonetic of the entry carries an audio URL.
type NoAudioAvailableError struct {
	Word string
}

func (e *NoAudioAvailableError) Error() string {
	return fmt.Sprintf("freedict: no audio available for %q", e.Word)
}

func (e *NoAudioAvailableError) Unwrap() error { return ErrNoAudioAvailable }
