package chatauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashIsSaltedPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	p := "password1"

	hash1, err := h.Hash(p)
	assert.NoError(t, err)
	hash2, err := h.Hash(p)
	assert.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, h.Verify(p, hash1))
	assert.True(t, h.Verify(p, hash2))
}

func TestHasher_VerifyRejectsWrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("password1")
	assert.NoError(t, err)

	assert.False(t, h.Verify("password2", hash))
	assert.False(t, h.Verify("", hash))
	assert.False(t, h.Verify("password1", "not-a-hash"))
}

func TestNewHasher_ClampsInvalidCost(t *testing.T) {
	tests := []struct {
		cost, want int
	}{
		{-1, DefaultHashCost},
		{0, DefaultHashCost},
		{100, DefaultHashCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewHasher(tt.cost).cost)
	}
}
