// Package bst is an unbalanced binary search tree, kept as a baseline to
// compare the red-black tree's height against.
package bst

import "golang.org/x/exp/constraints"

type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

func (t *Tree[T]) Insert(value T) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case value < n.value:
			link = &n.left
		case value > n.value:
			link = &n.right
		default:
			return false
		}
	}
	*link = &node[T]{value: value}
	t.size++
	return true
}

func (t *Tree[T]) Contains(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

func (t *Tree[T]) Min() (T, bool) {
	var v T
	if t.root == nil {
		return v, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

func (t *Tree[T]) Max() (T, bool) {
	var v T
	if t.root == nil {
		return v, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

func (t *Tree[T]) Len() int {
	return t.size
}

// Height walks the tree level by level; ascending input makes it a list,
// so recursion depth would follow the input size.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		h++
		next := level[:0:0]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h
}
