// Package secrets persists the per-user access token between runs.
//
// The client treats the store as the single source of truth for the
// signed-in user's token: every read goes through the store rather
// than a cached copy, so an external wipe signs the user out on the
// next request.
package secrets

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("secrets: not found")

// Keys used by the client.
const (
	// UserTokenKey holds the signed-in user's bearer access token.
	UserTokenKey = "backand-user-token"
)

// Store is a tiny keyed secret store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
