// Package render draws a red-black tree as text, one line per level, with
// every node in its in-order column.
package render

import (
	"fmt"
	"strings"

	"github.com/grafana/go-redblack/internal/tree"
	"golang.org/x/exp/constraints"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiWhite = "\033[37m"
)

// Tree renders the subtree below root. When colored is set, red nodes are
// printed red and black nodes white.
func Tree[T constraints.Ordered](root *tree.Node[T], colored bool) string {
	sb := &strings.Builder{}
	line := &strings.Builder{}
	for depth, h := 1, Height(root); depth <= h; depth++ {
		line.Reset()
		dumpLine(line, root, depth, colored)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func Height[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}
	l, r := Height(n.Left()), Height(n.Right())
	if l > r {
		return l + 1
	}
	return r + 1
}

// Width is the number of columns the subtree below n occupies.
func Width[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}
	return Width(n.Left()) + len(label(n)) + Width(n.Right())
}

func label[T constraints.Ordered](n *tree.Node[T]) string {
	return fmt.Sprint(n.Value())
}

func formatLabel[T constraints.Ordered](n *tree.Node[T], colored bool) string {
	if !colored {
		return label(n)
	}
	color := ansiWhite
	if n.IsRed() {
		color = ansiRed
	}
	return color + label(n) + ansiReset
}

// dumpLine writes exactly Width(n) visible columns.
func dumpLine[T constraints.Ordered](sb *strings.Builder, n *tree.Node[T], depth int, colored bool) {
	if n == nil {
		return
	}

	if depth == 1 {
		sb.WriteString(strings.Repeat(" ", Width(n.Left())))
		sb.WriteString(formatLabel(n, colored))
		sb.WriteString(strings.Repeat(" ", Width(n.Right())))
		return
	}

	dumpLine(sb, n.Left(), depth-1, colored)
	sb.WriteString(strings.Repeat(" ", len(label(n))))
	dumpLine(sb, n.Right(), depth-1, colored)
}
