package api

import (
	"github.com/oklog/ulid/v2"
)

// RequestID correlates a request descriptor with its log lines. It is never
// sent on the wire.
type RequestID = string

// NewRequestID returns a fresh ULID. ULIDs sort by creation time, which keeps
// interleaved debug logs readable.
func NewRequestID() RequestID {
	return ulid.Make().String()
}

// Header is one name/value pair. Requests carry headers as a slice because
// their order is part of the descriptor contract, and Go maps would not keep
// it.
type Header struct {
	Name  string
	Value string
}

// Request is a fully assembled request descriptor, ready for a transport.
// Each Request is consumed exactly once.
type Request struct {
	ID      RequestID
	Method  string
	URL     string
	Headers []Header
	Body    any // JSON-encoded by the transport when non-nil
}

// Header returns the value of the named header, or "" when absent.
func (r *Request) Header(name string) string {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}
