package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSequence_Deterministic(t *testing.T) {
	a := NewSeededSequence(12345)
	b := NewSeededSequence(12345)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next(), b.Next(), "sequences diverged at draw %d", i)
	}
}

func TestSeededSequence_Range(t *testing.T) {
	seq := NewSeededSequence(1)

	for i := 0; i < 10000; i++ {
		v := seq.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSeededSequence_DifferentSeedsDiverge(t *testing.T) {
	a := NewSeededSequence(12345)
	b := NewSeededSequence(54321)

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}
