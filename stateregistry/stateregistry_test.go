package stateregistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopt/numheur/pattern"
)

func TestGetOrInsertDedups(t *testing.T) {
	r := New()
	s1 := pattern.AbstractState{PropHash: 3, NumState: []float64{1, 2}}
	s2 := pattern.AbstractState{PropHash: 3, NumState: []float64{1, 2}}
	s3 := pattern.AbstractState{PropHash: 3, NumState: []float64{1, 3}}

	id1 := r.GetOrInsert(s1)
	id2 := r.GetOrInsert(s2)
	id3 := r.GetOrInsert(s3)

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	require.Equal(t, 2, r.Size())
	assert.True(t, r.Lookup(id1).Equal(s1))
}

func TestGetOrInsertAssignsStableSequentialIds(t *testing.T) {
	r := New()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = r.GetOrInsert(pattern.AbstractState{PropHash: uint64(i)})
	}
	for i, id := range ids {
		assert.Equal(t, i, id)
	}
}
