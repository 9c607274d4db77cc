package tree

// fixup restores the color invariants after z was attached as a red leaf.
func (t *RedBlack[T]) fixup(z *Node[T]) {
	for z != t.root && z.parent.color == Red {
		parent := z.parent
		// parent is red, so it is not the root and has a parent of its own.
		grandparent := parent.parent

		if parent == grandparent.left {
			uncle := grandparent.right
			if uncle.IsRed() {
				parent.color, uncle.color, grandparent.color = Black, Black, Red
				t.observe(EventRecolor)
				z = grandparent
				continue
			}

			if z == parent.right {
				t.RotateLeft(parent)
				parent = z
				t.observe(EventRotateInner)
			}

			t.RotateRight(grandparent)
			parent.color, grandparent.color = grandparent.color, parent.color
			t.observe(EventRotateOuter)
			break
		}

		uncle := grandparent.left
		if uncle.IsRed() {
			parent.color, uncle.color, grandparent.color = Black, Black, Red
			t.observe(EventRecolor)
			z = grandparent
			continue
		}

		if z == parent.left {
			t.RotateRight(parent)
			parent = z
			t.observe(EventRotateInner)
		}

		t.RotateLeft(grandparent)
		parent.color, grandparent.color = grandparent.color, parent.color
		t.observe(EventRotateOuter)
		break
	}

	t.root.color = Black
}
