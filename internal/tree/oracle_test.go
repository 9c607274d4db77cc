package tree

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference sets from other ordered containers must agree with ours on
// membership, order and insert outcome.
func TestRB_AgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	tree := &RedBlack[int]{}
	gods := redblacktree.NewWithIntComparator()
	bt := btree.NewOrderedG[int](8)

	for i := 0; i < 5000; i++ {
		v := r.Intn(2500)
		_, present := gods.Get(v)
		_, replaced := bt.ReplaceOrInsert(v)
		require.Equal(t, present, replaced)
		gods.Put(v, struct{}{})

		assert.Equal(t, !present, tree.Insert(v), "insert %d", v)
	}
	require.NoError(t, tree.Check())

	assert.Equal(t, gods.Size(), tree.Len())
	assert.Equal(t, bt.Len(), tree.Len())

	var fromBTree []int
	bt.Ascend(func(v int) bool {
		fromBTree = append(fromBTree, v)
		return true
	})
	assert.Equal(t, fromBTree, tree.Values())

	keys := gods.Keys()
	got := tree.Values()
	require.Len(t, got, len(keys))
	for i, k := range keys {
		assert.Equal(t, k.(int), got[i])
	}

	for v := -10; v < 2600; v++ {
		assert.Equal(t, bt.Has(v), tree.Contains(v), "contains %d", v)
	}

	lo, hi := tree.MinMax()
	assert.Equal(t, gods.Left().Key, lo)
	assert.Equal(t, gods.Right().Key, hi)
}
