package api

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited means the client-side throttle rejected the call
	// before it reached the network.
	ErrRateLimited = errors.New("too many requests, please try again later")

	// ErrInsecureTransport means a non-HTTPS URL was used in production mode.
	ErrInsecureTransport = errors.New("only https connections allowed in production")

	// ErrUnexpectedContentType means the response did not declare a
	// JSON-compatible content type.
	ErrUnexpectedContentType = errors.New("invalid response content type")

	// ErrResponseTooLarge means the response body exceeded the parse cap.
	ErrResponseTooLarge = errors.New("response too large")

	// ErrUnauthorized means the backend rejected the session. The local
	// token has already been cleared by the time this is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork replaces transport-level failures. The underlying cause
	// is logged, not surfaced, to keep internals out of user-facing text.
	ErrNetwork = errors.New("network error, please check your connection")
)

// ServerError carries a non-2xx status and the backend-provided message.
// The message has been through the text sanitizer and is safe to render.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}
