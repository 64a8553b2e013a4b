package parser

import (
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadCitation appends a SOUR citation to list. The variant is picked
// by the value: an @xref@ pointer makes a CitationWithSource, inline
// text a CitationWithoutSource.
func (p *Parser) loadCitation(n *gedtree.Node, list *[]model.Citation) {
	if referencesAnotherNode(n) {
		*list = append(*list, p.loadCitationWithSource(n))
	} else {
		*list = append(*list, p.loadCitationWithoutSource(n))
	}
}

func (p *Parser) loadCitationWithSource(n *gedtree.Node) *model.CitationWithSource {
	c := &model.CitationWithSource{Source: p.source(n.Value)}
	for _, ch := range n.Children {
		switch ch.Tag {
		case "PAGE":
			c.WhereInSource = p.text(ch)
		case "EVEN":
			c.EventCited = model.NewText(ch.Value)
			for _, gc := range ch.Children {
				if gc.Tag == "ROLE" {
					c.RoleInEvent = p.text(gc)
				} else {
					p.unknownTag(gc, c.EventCited)
				}
			}
		case "DATA":
			d := &model.CitationData{}
			c.Data = append(c.Data, d)
			p.loadCitationData(ch, d)
		case "QUAY":
			c.Certainty = p.text(ch)
		case "NOTE":
			p.loadNote(ch, &c.Notes)
		default:
			p.unknownTag(ch, c)
		}
	}
	return c
}

func (p *Parser) loadCitationWithoutSource(n *gedtree.Node) *model.CitationWithoutSource {
	c := &model.CitationWithoutSource{}
	c.Description = append(c.Description, n.Value)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "CONT":
			c.Description = append(c.Description, ch.Value)
		case "CONC":
			if len(c.Description) == 0 {
				c.Description = append(c.Description, ch.Value)
			} else {
				c.Description[len(c.Description)-1] += ch.Value
			}
		case "TEXT":
			var ls []string
			p.loadMultiLines(ch, &ls, c)
			c.TextFromSource = append(c.TextFromSource, ls)
		case "NOTE":
			p.loadNote(ch, &c.Notes)
		default:
			p.unknownTag(ch, c)
		}
	}
	return c
}

func (p *Parser) loadCitationData(n *gedtree.Node, d *model.CitationData) {
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			d.EntryDate = p.text(ch)
		case "TEXT":
			var ls []string
			p.loadMultiLines(ch, &ls, d)
			d.SourceText = append(d.SourceText, ls)
		default:
			p.unknownTag(ch, d)
		}
	}
}
