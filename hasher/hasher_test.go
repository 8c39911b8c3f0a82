package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt()

	hashed, err := h.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123456", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	assert.True(t, h.Verify("pw123456", hashed))
	assert.False(t, h.Verify("pw1234567", hashed))
}

func TestBcrypt_RejectsOverlongPassword(t *testing.T) {
	h := NewBcrypt()

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestBcrypt_Salted(t *testing.T) {
	h := NewBcrypt()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_Failures(t *testing.T) {
	h := NewBcrypt()

	_, err := h.Hash("")
	assert.Error(t, err)

	_, err = h.Hash(strings.Repeat("x", 80))
	assert.Error(t, err)

	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
