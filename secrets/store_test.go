package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get(UserTokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(UserTokenKey, "tok-1"))
	got, err := s.Get(UserTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	// Overwrite.
	require.NoError(t, s.Set(UserTokenKey, "tok-2"))
	got, err = s.Get(UserTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)

	require.NoError(t, s.Delete(UserTokenKey))
	_, err = s.Get(UserTokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, s.Delete(UserTokenKey))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestKeyring(t *testing.T) {
	keyring.MockInit()
	testStore(t, NewKeyring())
}
