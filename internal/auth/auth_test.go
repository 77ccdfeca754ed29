package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hashed, err := b.Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hashed)

	assert.NoError(t, b.Compare(hashed, "password"))
	assert.ErrorIs(t, b.Compare(hashed, "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, b.Compare("not-a-hash", "password"), ErrInvalidCredentials)
}
