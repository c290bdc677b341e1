/*
Package styledbg implements helpers to debug declaration blocks and
cascade collections.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledbg

import (
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cascade"
	"github.com/xlab/treeprint"
)

// BlockTree renders a declaration block as a printable tree, one leaf
// per declaration.
func BlockTree(block *style.DeclarationBlock) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue("declarations")
	for i, d := range block.Declarations() {
		label := d.String()
		if block.ImportanceAt(i).Important() {
			label += " !important"
		}
		tree.AddNode(label)
	}
	return tree
}

// CascadeTree renders a cascade collection as a printable tree, with one
// branch per property and the competing declarations as leaves in
// collection order.
func CascadeTree(decls *cascade.ContextualDeclarations) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue("cascade")
	branches := make(map[style.LonghandID]treeprint.Tree)
	for i := 0; i < decls.Len(); i++ {
		d := decls.At(i)
		id := d.Declaration.ID()
		branch, ok := branches[id]
		if !ok {
			branch = tree.AddBranch(id.String())
			branches[id] = branch
		}
		branch.AddNode(d.String())
	}
	return tree
}
