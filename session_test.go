package backand

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backand/backand-go/api"
	"github.com/backand/backand-go/config"
	"github.com/backand/backand-go/secrets"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(&config.Config{
		AppName:        "todoapp",
		AnonymousToken: "anon-123",
		SignUpToken:    "su-456",
	}, secrets.NewMemory())
}

// flakyStore fails selected operations to drive the error paths.
type flakyStore struct {
	*secrets.Memory
	setErr error
	delErr error
}

func (f *flakyStore) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(key, value)
}

func (f *flakyStore) Delete(key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	return f.Memory.Delete(key)
}

func TestSession_StartsAnonymous(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, config.ModeAnonymous, s.Mode())
	assert.False(t, s.SignedIn())
}

func TestSession_ConfigModeOverride(t *testing.T) {
	s := NewSession(&config.Config{
		AppName: "todoapp",
		Mode:    config.ModeAuthenticatedUser,
	}, secrets.NewMemory())
	assert.Equal(t, config.ModeAuthenticatedUser, s.Mode())
}

func TestSession_HeadersPerMode(t *testing.T) {
	s := newTestSession(t)

	hs := s.headers(false)
	require.Len(t, hs, 2)
	assert.Equal(t, api.Header{Name: "AppName", Value: "todoapp"}, hs[0])
	assert.Equal(t, api.Header{Name: "AnonymousToken", Value: "anon-123"}, hs[1])

	s.beginSignUp()
	hs = s.headers(true)
	require.Len(t, hs, 3)
	assert.Equal(t, api.Header{Name: "SignUpToken", Value: "su-456"}, hs[1])
	assert.Equal(t, api.Header{Name: "Content-Type", Value: "application/json"}, hs[2])

	require.NoError(t, s.completeSignIn("tok-1"))
	hs = s.headers(false)
	require.Len(t, hs, 2)
	assert.Equal(t, api.Header{Name: "Authorization", Value: "Bearer tok-1"}, hs[1])
}

func TestSession_AuthenticatedHeaderWithMissingToken(t *testing.T) {
	s := NewSession(&config.Config{
		AppName: "todoapp",
		Mode:    config.ModeAuthenticatedUser,
	}, secrets.NewMemory())

	hs := s.headers(false)
	require.Len(t, hs, 2)
	assert.Equal(t, api.Header{Name: "Authorization", Value: "Bearer "}, hs[1])
}

func TestSession_SignUpTransitions(t *testing.T) {
	t.Run("no auto sign-in stays pending", func(t *testing.T) {
		s := newTestSession(t)
		s.beginSignUp()
		require.NoError(t, s.completeSignUp("su-tok", false))
		assert.Equal(t, config.ModeSignUpPending, s.Mode())
		assert.False(t, s.SignedIn())
	})

	t.Run("no token stays pending", func(t *testing.T) {
		s := newTestSession(t)
		s.beginSignUp()
		require.NoError(t, s.completeSignUp("", true))
		assert.Equal(t, config.ModeSignUpPending, s.Mode())
		assert.False(t, s.SignedIn())
	})

	t.Run("auto sign-in with token authenticates", func(t *testing.T) {
		s := newTestSession(t)
		s.beginSignUp()
		require.NoError(t, s.completeSignUp("su-tok", true))
		assert.Equal(t, config.ModeAuthenticatedUser, s.Mode())
		assert.True(t, s.SignedIn())

		tok, err := s.UserToken()
		require.NoError(t, err)
		assert.Equal(t, "su-tok", tok)
	})
}

func TestSession_BeginSignUpForcesModeFromAnywhere(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.completeSignIn("tok-1"))
	require.Equal(t, config.ModeAuthenticatedUser, s.Mode())

	s.beginSignUp()
	assert.Equal(t, config.ModeSignUpPending, s.Mode())
}

func TestSession_SignOut(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.completeSignIn("tok-1"))
	require.True(t, s.SignedIn())

	require.NoError(t, s.signOut())
	assert.Equal(t, config.ModeAnonymous, s.Mode())
	assert.False(t, s.SignedIn())

	tok, err := s.UserToken()
	require.NoError(t, err)
	assert.Equal(t, "", tok)

	// Signing out twice is harmless.
	assert.NoError(t, s.signOut())
}

func TestSession_SignedInIndependentOfMode(t *testing.T) {
	store := secrets.NewMemory()
	s := NewSession(&config.Config{AppName: "todoapp"}, store)

	require.NoError(t, store.Set(secrets.UserTokenKey, "tok-9"))
	assert.Equal(t, config.ModeAnonymous, s.Mode())
	assert.True(t, s.SignedIn())
}

func TestSession_TokenAccessors(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetUserToken("tok-7"))
	tok, err := s.UserToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-7", tok)
	// Writing the token is storage only; the mode stays put.
	assert.Equal(t, config.ModeAnonymous, s.Mode())

	require.NoError(t, s.ClearUserToken())
	assert.False(t, s.SignedIn())

	// Clearing an absent token is a no-op.
	assert.NoError(t, s.ClearUserToken())
}

func TestSession_StoreFailures(t *testing.T) {
	boom := errors.New("keychain locked")

	t.Run("set failure leaves mode unchanged", func(t *testing.T) {
		s := NewSession(&config.Config{AppName: "todoapp"},
			&flakyStore{Memory: secrets.NewMemory(), setErr: boom})
		assert.ErrorIs(t, s.completeSignIn("tok-1"), boom)
		assert.Equal(t, config.ModeAnonymous, s.Mode())
	})

	t.Run("delete failure still resets mode", func(t *testing.T) {
		store := &flakyStore{Memory: secrets.NewMemory()}
		s := NewSession(&config.Config{AppName: "todoapp"}, store)
		require.NoError(t, s.completeSignIn("tok-1"))

		store.delErr = boom
		assert.ErrorIs(t, s.signOut(), boom)
		assert.Equal(t, config.ModeAnonymous, s.Mode())
	})
}
