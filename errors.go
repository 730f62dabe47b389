package backand

import (
	"fmt"

	"github.com/ztrue/tracerr"
)

// TransportError wraps a failure that happened before any HTTP response
// arrived (DNS, dial, TLS, timeout, canceled context).
type TransportError struct {
	Err error
}

func newTransportError(err error) *TransportError {
	return &TransportError{Err: tracerr.Wrap(err)}
}

func (e *TransportError) Error() string {
	return "backand: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx HTTP response. Body holds the raw response
// bytes; Message is the server's error text when the body carried one.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backand: %s: %s", e.Status, e.Message)
	}
	return "backand: " + e.Status
}

// DecodeError is a 2xx response whose body could not be decoded as JSON.
type DecodeError struct {
	Err error
}

func newDecodeError(err error) *DecodeError {
	return &DecodeError{Err: tracerr.Wrap(err)}
}

func (e *DecodeError) Error() string {
	return "backand: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
