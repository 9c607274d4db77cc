package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Color int8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	default:
		return "black"
	}
}

// Node is a single element of a RedBlack tree. Nodes are owned by their
// tree through the left and right links; parent is a back-reference used
// for upward traversal only.
type Node[T constraints.Ordered] struct {
	value T
	color Color

	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}

// IsRed reports whether n is red. Absent nodes are black.
func (n *Node[T]) IsRed() bool {
	return n != nil && n.color == Red
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) String() string {
	if n == nil {
		return "nil"
	}

	color := 'B'
	if n.color == Red {
		color = 'R'
	}

	return fmt.Sprintf("Node[%c:%v](%v, %v)", color, n.value, n.left, n.right)
}
