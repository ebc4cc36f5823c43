package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("2377225624"))
	assert.False(t, IsLuhn("2377225625"))
	assert.False(t, IsLuhn("not a number"))
	assert.False(t, IsLuhn(""))
}

func TestLuhnComplete(t *testing.T) {
	for _, base := range []string{"237722562", "123456789012345", "0"} {
		n := LuhnComplete(base)
		assert.Len(t, n, len(base)+1)
		assert.True(t, IsLuhn(n), n)
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("13800138000"))
	assert.True(t, IsPhone("19912345678"))
	assert.False(t, IsPhone("12345678901"))
	assert.False(t, IsPhone("138001380"))
	assert.False(t, IsPhone("abc"))
}
