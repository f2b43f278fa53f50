package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	assert.Equal(t, base, ExponentialBackoff(base, max, 0))
	assert.Equal(t, 200*time.Millisecond, ExponentialBackoff(base, max, 1))
	assert.Equal(t, 800*time.Millisecond, ExponentialBackoff(base, max, 3))
	assert.Equal(t, max, ExponentialBackoff(base, max, 4))
	assert.Equal(t, max, ExponentialBackoff(base, max, 50))
}

func TestDuration(t *testing.T) {
	d := time.Second
	for i := 0; i < 100; i++ {
		got := Duration(d, DefaultJitter)
		assert.GreaterOrEqual(t, got, d)
		assert.LessOrEqual(t, got, d+d/2)
	}
}

func TestBackoff(t *testing.T) {
	b := NewBackoff(100*time.Millisecond, time.Second)

	first := b.Next()
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 150*time.Millisecond)

	second := b.Next()
	assert.GreaterOrEqual(t, second, 200*time.Millisecond)
	assert.Equal(t, 2, b.Attempt())

	b.Reset()
	assert.Equal(t, 0, b.Attempt())
}
