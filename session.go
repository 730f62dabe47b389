package backand

import (
	"errors"
	"sync"

	"github.com/clok/kemba"

	"github.com/backand/backand-go/api"
	"github.com/backand/backand-go/config"
	"github.com/backand/backand-go/secrets"
)

var sessionKemba = kemba.New("backand:session")

// Session is the authentication state for one app: the current mode
// plus the tokens that back each mode. The anonymous and sign-up tokens
// live in memory for the life of the session; the user token lives in
// the secret store and is read back on every use, so it survives
// restarts and disappears as soon as the store entry does.
//
// A Session is safe for concurrent use.
type Session struct {
	mu             sync.RWMutex
	mode           config.AuthMode
	appName        string
	anonymousToken string
	signUpToken    string
	store          secrets.Store
}

// NewSession starts a session in the config's mode, or anonymous when
// none is set.
func NewSession(cfg *config.Config, store secrets.Store) *Session {
	mode := cfg.Mode
	if mode == "" {
		mode = config.ModeAnonymous
	}
	return &Session{
		mode:           mode,
		appName:        cfg.AppName,
		anonymousToken: cfg.AnonymousToken,
		signUpToken:    cfg.SignUpToken,
		store:          store,
	}
}

// Mode reports the current authentication mode.
func (s *Session) Mode() config.AuthMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// UserToken reads the signed-in user's token from the secret store.
// A missing token is not an error; it comes back empty.
func (s *Session) UserToken() (string, error) {
	tok, err := s.store.Get(secrets.UserTokenKey)
	if errors.Is(err, secrets.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tok, nil
}

// SetUserToken writes a user token through to the secret store. It is
// a storage accessor only; the mode does not change.
func (s *Session) SetUserToken(token string) error {
	return s.store.Set(secrets.UserTokenKey, token)
}

// ClearUserToken removes the user token from the secret store.
// Clearing an absent token is a no-op.
func (s *Session) ClearUserToken() error {
	return s.store.Delete(secrets.UserTokenKey)
}

// SignedIn reports whether the secret store holds a user token. The
// answer is independent of the current mode.
func (s *Session) SignedIn() bool {
	tok, err := s.UserToken()
	return err == nil && tok != ""
}

// headers builds the header set for one outgoing request: AppName
// always, then the credential the current mode calls for, then the
// content type when a body rides along. The mode is sampled once, at
// build time.
func (s *Session) headers(hasBody bool) []api.Header {
	s.mu.RLock()
	mode := s.mode
	s.mu.RUnlock()

	hs := []api.Header{{Name: "AppName", Value: s.appName}}
	switch mode {
	case config.ModeAuthenticatedUser:
		tok, err := s.UserToken()
		if err != nil {
			sessionKemba.Extend("headers").Printf("user token read failed: %v", err)
		}
		hs = append(hs, api.Header{Name: "Authorization", Value: "Bearer " + tok})
	case config.ModeSignUpPending:
		hs = append(hs, api.Header{Name: "SignUpToken", Value: s.signUpToken})
	default:
		hs = append(hs, api.Header{Name: "AnonymousToken", Value: s.anonymousToken})
	}
	if hasBody {
		hs = append(hs, api.Header{Name: "Content-Type", Value: "application/json"})
	}
	return hs
}

// beginSignUp forces sign-up mode before a registration request goes
// out, whatever the mode was.
func (s *Session) beginSignUp() {
	s.mu.Lock()
	s.mode = config.ModeSignUpPending
	s.mu.Unlock()
}

// completeSignUp handles a successful registration. The mode moves to
// authenticated only when the caller asked to be signed in and the
// response carried a token; otherwise the session stays in sign-up
// mode.
func (s *Session) completeSignUp(token string, signInAfter bool) error {
	if !signInAfter || token == "" {
		return nil
	}
	return s.completeSignIn(token)
}

// completeSignIn stores the access token and switches to authenticated
// mode. A store failure leaves the mode where it was.
func (s *Session) completeSignIn(accessToken string) error {
	if err := s.SetUserToken(accessToken); err != nil {
		return err
	}
	s.mu.Lock()
	s.mode = config.ModeAuthenticatedUser
	s.mu.Unlock()
	return nil
}

// signOut drops the stored user token and returns to anonymous mode.
// The mode resets even when the store delete fails.
func (s *Session) signOut() error {
	err := s.ClearUserToken()
	s.mu.Lock()
	s.mode = config.ModeAnonymous
	s.mu.Unlock()
	return err
}
