package tree

import "fmt"

// RotateLeft lifts the right child of pivot into pivot's position and makes
// pivot its left child. Colors are left untouched, so calling it outside of
// Insert may break the color invariants; ordering and back-links are kept.
// It panics if pivot has no right child.
func (t *RedBlack[T]) RotateLeft(pivot *Node[T]) *Node[T] {
	child := pivot.right
	if child == nil {
		panic(fmt.Sprintf("tree: rotate left around %v without a right child", pivot.value))
	}

	pivot.right = child.left
	if child.left != nil {
		child.left.parent = pivot
	}
	t.relink(pivot, child)

	child.left = pivot
	pivot.parent = child
	return child
}

// RotateRight mirrors RotateLeft. It panics if pivot has no left child.
func (t *RedBlack[T]) RotateRight(pivot *Node[T]) *Node[T] {
	child := pivot.left
	if child == nil {
		panic(fmt.Sprintf("tree: rotate right around %v without a left child", pivot.value))
	}

	pivot.left = child.right
	if child.right != nil {
		child.right.parent = pivot
	}
	t.relink(pivot, child)

	child.right = pivot
	pivot.parent = child
	return child
}

// relink puts c into the slot n occupies under n's parent, or makes it the
// root when n has no parent.
func (t *RedBlack[T]) relink(n, c *Node[T]) {
	p := n.parent
	c.parent = p

	switch {
	case p == nil:
		t.root = c
	case p.left == n:
		p.left = c
	case p.right == n:
		p.right = c
	default:
		panic(fmt.Sprintf("tree: %v is not a child of its parent %v", n.value, p.value))
	}
}
