// Package gedtree assembles lexed GEDCOM lines into a hierarchy keyed
// on their level numbers. The tree is an intermediate form: the
// semantic parser walks it once and then it is discarded.
package gedtree

import (
	"fmt"

	"github.com/dgallion1/gedgest/internal/gedline"
)

// Node is one line of the file with its children attached. Parent is a
// back-reference only; children own nothing beyond their own subtree.
type Node struct {
	Level    int
	XrefID   string
	Tag      string
	Value    string
	Number   int
	Children []*Node
	Parent   *Node
}

func (n *Node) String() string {
	return fmt.Sprintf("Line %d: %d %s %s", n.Number, n.Level, n.Tag, n.Value)
}

// Build attaches each line as a child of the most recent line one level
// up. It returns a synthetic root (level -1) whose children are the
// level-0 records. The first line must be at level 0 and no line may
// skip a level.
func Build(lines []gedline.Line) (*Node, error) {
	root := &Node{Level: -1}
	stack := []*Node{root}
	for _, ln := range lines {
		node := &Node{
			Level:  ln.Level,
			XrefID: ln.XrefID,
			Tag:    ln.Tag,
			Value:  ln.Value,
			Number: ln.Number,
		}
		top := stack[len(stack)-1]
		if node.Level > top.Level+1 {
			if top == root {
				return nil, &gedline.StructuralError{
					Line: ln.Number,
					Msg:  fmt.Sprintf("first record must be at level 0, found level %d", node.Level),
				}
			}
			return nil, &gedline.StructuralError{
				Line: ln.Number,
				Msg: fmt.Sprintf("level %d follows level %d, skipping level %d",
					node.Level, top.Level, top.Level+1),
			}
		}
		// Close open parents down to this node's own parent.
		for stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		node.Parent = parent
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}
	return root, nil
}
