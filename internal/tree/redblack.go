package tree

import (
	"context"
	"strings"

	"golang.org/x/exp/constraints"
)

// RedBlack is an ordered set kept balanced by red-black coloring. The zero
// value is an empty tree. It is not safe for concurrent use: rotations leave
// back-links inconsistent mid-insert, so callers sharing a tree must guard
// every call with one lock.
type RedBlack[T constraints.Ordered] struct {
	root     *Node[T]
	size     int
	observer Observer
}

func New[T constraints.Ordered](opts ...Option) *RedBlack[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &RedBlack[T]{observer: o.observer}
}

func (t *RedBlack[T]) Root() *Node[T] {
	return t.root
}

func (t *RedBlack[T]) Len() int {
	return t.size
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *RedBlack[T]) Height() int {
	return height(t.root)
}

func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (t *RedBlack[T]) Search(value T) *Node[T] {
	return get(t.root, value)
}

func (t *RedBlack[T]) Contains(value T) bool {
	return get(t.root, value) != nil
}

func (t *RedBlack[T]) MinMax() (T, T) {
	var left T
	var right T
	if t.root == nil {
		return left, right
	}

	node := t.root
	for node != nil {
		left = node.value
		node = node.left
	}
	node = t.root
	for node != nil {
		right = node.value
		node = node.right
	}

	return left, right
}

// Insert adds value to the tree and rebalances it before returning. It
// reports false, leaving the tree untouched, when value is already present.
// Values are compared with < and > only: a float NaN compares equal to
// everything, so inserting it into a non-empty tree reports a duplicate.
func (t *RedBlack[T]) Insert(value T) bool {
	var parent *Node[T]
	link := &t.root
	for node := t.root; node != nil; node = *link {
		switch {
		case value < node.value:
			link = &node.left
		case value > node.value:
			link = &node.right
		default:
			t.observe(EventDuplicate)
			return false
		}
		parent = node
	}

	neue := &Node[T]{
		value:  value,
		color:  Red,
		parent: parent,
	}
	*link = neue
	t.size++
	t.observe(EventInsert)

	t.fixup(neue)
	return true
}

func (t *RedBlack[T]) String() string {
	return t.root.String()
}

// Values returns every value in ascending order.
func (t *RedBlack[T]) Values() []T {
	values := make([]T, 0, t.size)
	_ = t.Walk(context.Background(), func(v T) {
		values = append(values, v)
	})
	return values
}

func (t *RedBlack[T]) Walk(ctx context.Context, fn func(T)) error {
	return t.LimitedWalk(ctx, fn, walkAll[T]())
}

type WalkOption[T constraints.Ordered] func(current T) (include bool, walkRight bool)

func WalkRange[T constraints.Ordered](lower, upper T) WalkOption[T] {
	return func(current T) (bool, bool) {
		switch {
		case current > upper:
			return false, false
		case current < lower:
			return false, true
		default:
			return true, false
		}
	}
}

func WalkPrefix(prefix string) WalkOption[string] {
	return func(current string) (bool, bool) {
		switch {
		case strings.HasPrefix(current, prefix):
			return true, false
		case current < prefix:
			return false, true
		default:
			return false, false
		}
	}
}

func walkAll[T constraints.Ordered]() WalkOption[T] {
	return func(_ T) (bool, bool) {
		return true, false
	}
}

// LimitedWalk visits in ascending order the values option includes.
func (t *RedBlack[T]) LimitedWalk(ctx context.Context, fn func(T), option WalkOption[T]) error {
	if t.root == nil {
		return nil
	}

	stack := &Stack[*Node[T]]{}
	current := t.root
	for current != nil || stack.Len() != 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			// No-op
		}

		if current == nil {
			node, ok := stack.Pop()
			if !ok {
				break
			}
			fn(node.value)
			current = node.right
		} else {
			push, right := option(current.value)
			if push {
				stack.Push(current)
			}
			if right {
				current = current.right
			} else {
				current = current.left
			}
		}
	}

	return nil
}

// Clone returns an independent tree with the same values, colors and shape.
// The observer is shared with the copy.
func (t *RedBlack[T]) Clone() *RedBlack[T] {
	return &RedBlack[T]{
		root:     clone(t.root, nil),
		size:     t.size,
		observer: t.observer,
	}
}

func clone[T constraints.Ordered](n, parent *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	c := &Node[T]{
		value:  n.value,
		color:  n.color,
		parent: parent,
	}
	c.left = clone(n.left, c)
	c.right = clone(n.right, c)
	return c
}

func get[T constraints.Ordered](parent *Node[T], value T) *Node[T] {
	if parent == nil {
		return nil
	}

	if value < parent.value {
		return get(parent.left, value)
	}
	if value > parent.value {
		return get(parent.right, value)
	}
	return parent
}
