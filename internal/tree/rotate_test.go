package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLeft_Root(t *testing.T) {
	tree := build(4, 2, 6, 5, 7)
	colors := map[int]Color{}
	for _, v := range tree.Values() {
		colors[v] = tree.Search(v).Color()
	}
	pivot := tree.Root()

	top := tree.RotateLeft(pivot)

	assert.Equal(t, 6, top.Value())
	assert.Same(t, top, tree.Root())
	assert.Nil(t, top.Parent())
	assert.Same(t, pivot, top.Left())
	assert.Equal(t, 7, top.Right().Value())
	assert.Equal(t, 5, pivot.Right().Value())
	assert.Same(t, pivot, pivot.Right().Parent())
	assert.True(t, IsValid(tree.Root()))
	assert.Equal(t, []int{2, 4, 5, 6, 7}, tree.Values())
	for _, v := range tree.Values() {
		assert.Equal(t, colors[v], tree.Search(v).Color(), "color of %d", v)
	}
}

func TestRotateRight_Inner(t *testing.T) {
	tree := build(8, 4, 12, 2, 6, 1)
	pivot := tree.Search(4)
	parent := pivot.Parent()
	require.NotNil(t, parent)

	top := tree.RotateRight(pivot)

	assert.Equal(t, 2, top.Value())
	assert.Same(t, parent, top.Parent())
	assert.True(t, parent.Left() == top || parent.Right() == top)
	assert.Same(t, pivot, top.Right())
	assert.True(t, IsValid(tree.Root()))
	assert.Equal(t, []int{1, 2, 4, 6, 8, 12}, tree.Values())
}

func TestRotate_RoundTrip(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7, 8)
	before := tree.String()

	pivot := tree.Search(6)
	top := tree.RotateLeft(pivot)
	require.True(t, IsValid(tree.Root()))
	tree.RotateRight(top)

	assert.Equal(t, before, tree.String())
	assert.True(t, IsValid(tree.Root()))
}

func TestRotate_MissingChild(t *testing.T) {
	tree := build(1, 2)
	root := tree.Root()
	require.Nil(t, root.Left())

	assert.Panics(t, func() { tree.RotateRight(root) })
	assert.Panics(t, func() { tree.RotateLeft(root.Right()) })
	assert.NotPanics(t, func() { tree.RotateLeft(root) })
	assert.True(t, IsValid(tree.Root()))
}
