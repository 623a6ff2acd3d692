package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	hash, err := HashPassword("dp26#porc", "test-salt")
	require.NoError(t, err)
	return NewGate(Admin{Username: "admindp", Salt: "test-salt", Hash: hash})
}

func TestHashPasswordDeterministic(t *testing.T) {
	h1, err := HashPassword("secret", "salt")
	require.NoError(t, err)
	h2, err := HashPassword("secret", "salt")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 128) // 64 bytes hex-encoded

	h3, err := HashPassword("secret", "other-salt")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestVerify(t *testing.T) {
	g := newTestGate(t)

	assert.True(t, g.Verify("admindp", "dp26#porc"))
	assert.False(t, g.Verify("admindp", "wrong"))
	assert.False(t, g.Verify("someone", "dp26#porc"))
	assert.False(t, g.Verify("", ""))
}

func TestVerifyRejectsMalformedStoredHash(t *testing.T) {
	g := NewGate(Admin{Username: "admindp", Salt: "s", Hash: "not-hex"})
	assert.False(t, g.Verify("admindp", "anything"))
}
