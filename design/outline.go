package design

import (
	"fmt"
	"strconv"

	"github.com/xlab/treeprint"
)

// Outline renders node tree for diagnostics: one line per node with its type,
// flow axis and absolute position.
func Outline(root *Node) string {
	if root == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(describe(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(branch treeprint.Tree, n *Node) {
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			branch.AddNode(describe(c))
			continue
		}
		addChildren(branch.AddBranch(describe(c)), c)
	}
}

func describe(n *Node) string {
	pos := "x:- y:-"
	if n.Box != nil {
		pos = fmt.Sprintf("x:%s y:%s w:%s h:%s", num(n.Box.X), num(n.Box.Y), num(n.Box.Width), num(n.Box.Height))
	}
	return fmt.Sprintf("%s (%s) layoutMode:%s %s", n.Name, n.Type, n.Layout.Mode, pos)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
