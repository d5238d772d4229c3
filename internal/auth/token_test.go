package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, "snipbin", time.Minute)
	signed, err := m.Issue("user-1", "alice")
	require.NoError(t, err)

	got, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, "snipbin", -time.Minute)
	signed, err := m.Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, "snipbin", time.Minute)
	signed, err := m.Issue("user-1", "alice")
	require.NoError(t, err)

	other := NewTokenManager("ffffffffffffffffffffffffffffffff", "snipbin", time.Minute)
	_, err = other.Validate(signed)
	assert.Error(t, err)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	m := NewTokenManager(testSecret, "someone-else", time.Minute)
	signed, err := m.Issue("user-1", "alice")
	require.NoError(t, err)

	strict := NewTokenManager(testSecret, "snipbin", time.Minute)
	_, err = strict.Validate(signed)
	assert.Error(t, err)
}

func TestTokenManager_EmptyToken(t *testing.T) {
	m := NewTokenManager(testSecret, "snipbin", time.Minute)
	_, err := m.Validate("")
	assert.Error(t, err)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("not-a-hash", "hunter2"))
}
