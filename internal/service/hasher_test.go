package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", digest)
	assert.True(t, strings.HasPrefix(digest, "$2a$04$"))

	assert.True(t, h.Verify("s3cret", digest))
	assert.False(t, h.Verify("other", digest))
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("pw")
	require.NoError(t, err)
	b, err := h.Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("pw", a))
	assert.True(t, h.Verify("pw", b))
}

func TestBcryptHasher_EmptyInputs(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("")
	require.NoError(t, err)
	assert.Empty(t, digest)

	assert.False(t, h.Verify("", ""))
	assert.False(t, h.Verify("pw", ""))
	assert.False(t, h.Verify("", "$2a$04$abcdefghijklmnopqrstuuJ2j8d3lB3Cz2Q7J8A8bVqXwS6hQp1a"))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	assert.False(t, NewBcryptHasher(bcrypt.MinCost).Verify("pw", "plaintext-not-a-digest"))
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"configured", 5, 5},
		{"too low", 1, bcrypt.DefaultCost},
		{"too high", 99, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost).(*bcryptHasher)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestBcryptHasher_DigestCarriesCost(t *testing.T) {
	digest, err := NewBcryptHasher(5).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
