package tree

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrBackLink   = errors.New("parent and child links disagree")
	ErrOrder      = errors.New("values out of order")
	ErrRedRoot    = errors.New("root is red")
	ErrRedRed     = errors.New("red node with a red parent")
	ErrBlackDepth = errors.New("black height differs between paths")
)

// IsValid reports whether every node below n, n included, sits in the child
// slot of its parent that points back at it.
func IsValid[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if p := n.parent; p != nil && (p.left == n) == (p.right == n) {
		return false
	}
	if n.left != nil && n.left.parent != n {
		return false
	}
	if n.right != nil && n.right.parent != n {
		return false
	}
	return IsValid(n.left) && IsValid(n.right)
}

// Check walks the whole tree and reports every violated invariant. It is
// linear in the size of the tree and is never run by Insert.
func (t *RedBlack[T]) Check() error {
	if t.root == nil {
		return nil
	}

	var errs []error
	if t.root.parent != nil {
		errs = append(errs, fmt.Errorf("root %v has a parent: %w", t.root.value, ErrBackLink))
	}
	if !IsValid(t.root) {
		errs = append(errs, ErrBackLink)
	}
	if t.root.color == Red {
		errs = append(errs, ErrRedRoot)
	}

	c := checker[T]{}
	c.walk(t.root, nil, nil)
	errs = append(errs, c.errs...)

	if c.count != t.size {
		errs = append(errs, fmt.Errorf("walked %d nodes, size is %d", c.count, t.size))
	}

	return errors.Join(errs...)
}

type checker[T constraints.Ordered] struct {
	errs  []error
	count int
}

// walk returns the black height of n. lower and upper are the exclusive
// bounds its ancestors put on n's value.
func (c *checker[T]) walk(n *Node[T], lower, upper *T) int {
	if n == nil {
		return 1
	}
	c.count++

	if (lower != nil && n.value <= *lower) || (upper != nil && n.value >= *upper) {
		c.errs = append(c.errs, fmt.Errorf("%v: %w", n.value, ErrOrder))
	}
	if n.color == Red && n.parent.IsRed() {
		c.errs = append(c.errs, fmt.Errorf("%v under %v: %w", n.value, n.parent.value, ErrRedRed))
	}

	l := c.walk(n.left, lower, &n.value)
	r := c.walk(n.right, &n.value, upper)
	if l != r {
		c.errs = append(c.errs, fmt.Errorf("%v has %d on the left and %d on the right: %w", n.value, l, r, ErrBlackDepth))
	}

	if n.color == Black {
		return l + 1
	}
	return l
}
