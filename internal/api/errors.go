package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure. The kind is derived from the HTTP status
// code by the client, never parsed out of the server's error prose.
type Kind int

const (
	// KindNetwork covers transport failures: DNS, refused connections,
	// timeouts. No HTTP status is available.
	KindNetwork Kind = iota

	// KindUnauthorized covers 401 and 403. Callers treat it as an
	// expired or missing session.
	KindUnauthorized

	// KindValidation covers 400 and 422.
	KindValidation

	// KindNotFound covers 404.
	KindNotFound

	// KindServer covers every other non-2xx status and malformed
	// success bodies.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	default:
		return "server"
	}
}

// Error is a failed API call. Message carries the server-supplied error
// message when one was present, otherwise a generic fallback for the verb.
type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, 0 for transport failures.
	Status int
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsUnauthorized reports whether err is an authorization failure.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}

func kindFromStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf("network error: %v", err)}
}
