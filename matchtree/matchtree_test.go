package matchtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCollectsStarAndConcretePaths(t *testing.T) {
	tr := New(2)
	tr.Insert(map[int]int{0: 1}, 10)       // pos0=1, pos1=*
	tr.Insert(map[int]int{1: 0}, 20)       // pos0=*, pos1=0
	tr.Insert(map[int]int{0: 1, 1: 0}, 30) // fully concrete
	tr.Insert(map[int]int{}, 40)           // matches everything

	got := tr.Lookup([]int{1, 0})
	sort.Ints(got)
	assert.Equal(t, []int{10, 20, 30, 40}, got)

	got = tr.Lookup([]int{0, 1})
	assert.Equal(t, []int{40}, got)
}

func TestLookupEmptyTree(t *testing.T) {
	tr := New(0)
	tr.Insert(map[int]int{}, 1)
	assert.Equal(t, []int{1}, tr.Lookup(nil))
}
