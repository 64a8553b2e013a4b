// Package model holds the typed object graph a parsed GEDCOM file
// loads into. The Document owns every record through its maps; every
// other reference between records is a shared pointer into those maps,
// so a forward reference and the later declaration resolve to the same
// object.
package model

import "github.com/dgallion1/gedgest/internal/gedtree"

// CustomTagged is anything that can carry user-defined (underscore)
// tags the parser does not otherwise understand.
type CustomTagged interface {
	AddCustomTag(n *gedtree.Node)
}

// Element is the custom-tag holder embedded by every composite record.
type Element struct {
	Custom []*gedtree.Node `json:"-"`
}

func (e *Element) AddCustomTag(n *gedtree.Node) {
	e.Custom = append(e.Custom, n)
}

// Text is a tag value plus any user-defined child tags found under its
// source line.
type Text struct {
	Element
	Value string
}

func NewText(v string) *Text { return &Text{Value: v} }

// String returns the bare value; nil-safe.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return t.Value
}
