package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := &Tree[int]{}
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Height())

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		assert.True(t, tree.Insert(v))
	}
	assert.False(t, tree.Insert(4))

	assert.Equal(t, 7, tree.Len())
	assert.Equal(t, 3, tree.Height())
	assert.True(t, tree.Contains(7))
	assert.False(t, tree.Contains(6))

	lo, _ := tree.Min()
	hi, _ := tree.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)
}

func TestTree_Degenerate(t *testing.T) {
	tree := &Tree[int]{}
	for v := 1; v <= 1000; v++ {
		tree.Insert(v)
	}
	assert.Equal(t, 1000, tree.Height())
	assert.True(t, tree.Contains(1000))
}
