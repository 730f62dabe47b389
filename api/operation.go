// Package api holds the wire-level vocabulary of the Backand REST API: the
// closed set of logical operations, the routing table that turns an operation
// into method/path/body, and the request/response envelope types the
// transport exchanges.
package api

import "net/http"

// Operation is one logical backend action with its parameters. The variant
// set is closed: Resolve matches it exhaustively, and a value outside this
// file cannot exist.
type Operation interface {
	isOperation()
}

// CreateItem stores a new item under an object type.
type CreateItem struct {
	Object string
	Query  string // rendered query string ("?..."), or "" when no options
	Body   any
}

// ReadItem fetches a single item by id.
type ReadItem struct {
	Object string
	ID     string
	Query  string
}

// ReadItems lists items of an object type.
type ReadItems struct {
	Object string
	Query  string
}

// UpdateItem replaces the fields of an existing item.
type UpdateItem struct {
	Object string
	ID     string
	Query  string
	Body   any
}

// DeleteItem removes an item. Delete takes no query options.
type DeleteItem struct {
	Object string
	ID     string
}

// RunQuery executes a named server-side query. Params travel JSON-encoded in
// the request body even though the route is a GET; the service reads them
// from there and nowhere else.
type RunQuery struct {
	Name   string
	Params map[string]any
}

// PerformActions submits a batch of actions to the bulk endpoint.
type PerformActions struct {
	Actions []Action
}

// SignUp registers a new user. User carries the sign-up form fields.
type SignUp struct {
	User any
}

// SignIn exchanges credentials for an access token at the OAuth endpoint.
type SignIn struct {
	Username string
	Password string
}

func (CreateItem) isOperation()     {}
func (ReadItem) isOperation()       {}
func (ReadItems) isOperation()      {}
func (UpdateItem) isOperation()     {}
func (DeleteItem) isOperation()     {}
func (RunQuery) isOperation()       {}
func (PerformActions) isOperation() {}
func (SignUp) isOperation()         {}
func (SignIn) isOperation()         {}

// Methods the bulk endpoint accepts for an Action.
const (
	ActionPost   = http.MethodPost
	ActionPut    = http.MethodPut
	ActionDelete = http.MethodDelete
)

// Action is one element of a PerformActions batch. Method must be POST, PUT
// or DELETE; the bulk endpoint rejects anything else.
type Action struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Body   any    `json:"body,omitempty"`
}
