package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	var v Vector[int]

	// Empty vector: everything zero.
	assert.Equal(t, Stats{}, v.Stats())
	assert.Zero(t, v.Utilization())

	require.NoError(t, v.Reserve(200))
	for i := 0; i < 50; i++ {
		require.NoError(t, v.PushBack(i))
	}

	st := v.Stats()
	assert.Equal(t, 50, st.Len)
	assert.Equal(t, 200, st.Cap)
	assert.InDelta(t, 0.25, st.Utilization, 1e-9)

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 1.0, v.Utilization())
}

func TestSafeVectorStats(t *testing.T) {
	s := NewSafeVector[int]()
	require.NoError(t, s.Reserve(10))
	require.NoError(t, s.Push(1))

	st := s.Stats()
	assert.Equal(t, 1, st.Len)
	assert.Equal(t, 10, st.Cap)
	assert.InDelta(t, 0.1, s.Utilization(), 1e-9)
}
