package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(99), New(99)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestFromSeed(t *testing.T) {
	t.Run("explicit seed is kept", func(t *testing.T) {
		rng, seed := FromSeed(1234)
		assert.Equal(t, int64(1234), seed)
		assert.Equal(t, New(1234).Uint64(), rng.Uint64())
	})

	t.Run("zero picks a random seed", func(t *testing.T) {
		_, seed := FromSeed(0)
		assert.NotZero(t, seed)
	})
}
