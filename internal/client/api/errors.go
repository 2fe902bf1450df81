package api

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying call failures. Match with errors.Is.
var (
	// ErrUnavailable: the request never produced a response (DNS, refused
	// connection, dropped socket).
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout: no response within the client's request timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrUnauthorized: the backend answered 401. The client purges the
	// persisted credential before returning this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected: a 4xx other than 401, normally with a server message
	// (bad credentials, duplicate email, invalid payload).
	ErrRejected = errors.New("request rejected")

	// ErrServer: a 5xx response.
	ErrServer = errors.New("server error")
)

// CallError is the typed failure returned by every endpoint call. It carries
// the HTTP status (0 when no response arrived), the server-supplied message
// (when any) and the underlying cause, which is always one of the sentinel
// errors above so callers can classify with errors.Is.
type CallError struct {
	Status  int
	Message string
	Err     error
}

func (e *CallError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status > 0 {
		return fmt.Sprintf("api call failed: status %d", e.Status)
	}
	return e.Err.Error()
}

func (e *CallError) Unwrap() error { return e.Err }

// UserMessage derives a human-readable message from a call failure: the
// server-supplied message takes precedence, then a generic text keyed by the
// failure kind.
func UserMessage(err error) string {
	var ce *CallError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	switch {
	case errors.Is(err, ErrTimeout):
		return "The server took too long to respond. Please try again."
	case errors.Is(err, ErrUnavailable):
		return "Could not reach the server. Check your connection."
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrServer):
		return "The server ran into a problem. Please try again later."
	case err != nil:
		return "Something went wrong. Please try again."
	}
	return ""
}
