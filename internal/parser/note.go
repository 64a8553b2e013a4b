package parser

import (
	"fmt"

	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadNote appends a NOTE to notes. Three shapes exist: an @xref@
// pointer to a note record, an inline note that itself carries an xref
// id (which makes it a record too), and a plain inline note.
func (p *Parser) loadNote(n *gedtree.Node, notes *[]*model.Note) {
	var note *model.Note
	switch {
	case referencesAnotherNode(n):
		*notes = append(*notes, p.note(n.Value))
		return
	case n.XrefID != "":
		note = p.note(n.XrefID)
		p.declared[n.XrefID] = true
	default:
		note = &model.Note{}
		*notes = append(*notes, note)
	}
	note.Lines = append(note.Lines, n.Value)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "CONC":
			if len(note.Lines) == 0 {
				note.Lines = append(note.Lines, ch.Value)
			} else if last := note.Lines[len(note.Lines)-1]; last == "" {
				note.Lines[len(note.Lines)-1] = ch.Value
			} else {
				note.Lines[len(note.Lines)-1] = last + ch.Value
			}
		case "CONT":
			note.Lines = append(note.Lines, ch.Value)
		case "SOUR":
			p.loadCitation(ch, &note.Citations)
		case "REFN":
			u := &model.UserReference{}
			note.UserReferences = append(note.UserReferences, u)
			p.loadUserReference(ch, u)
		case "RIN":
			note.RecIDNumber = p.text(ch)
		case "CHAN":
			note.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, note.ChangeDate)
		default:
			p.unknownTag(ch, note)
		}
	}
}

// loadRootNote handles a level-0 NOTE. A root note without an xref id
// cannot be referenced by anything, so it is recorded as an error; the
// text is still loaded and then dropped.
func (p *Parser) loadRootNote(n *gedtree.Node) {
	var dummy []*model.Note
	p.loadNote(n, &dummy)
	if len(dummy) > 0 {
		p.Errors = append(p.Errors, fmt.Sprintf(
			"Line %d: at root level NOTE structures should have @ID@'s", n.Number))
	}
}
