package parser

import (
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadMultiLines applies the CONT/CONC rules to a multi-line text
// field. CONT starts a new line (empty if the tag has no value); CONC
// appends to the last line with no separator, starting one if the list
// is still empty. Child order is significant and preserved.
func (p *Parser) loadMultiLines(n *gedtree.Node, lines *[]string, el model.CustomTagged) {
	if n.Value != "" {
		*lines = append(*lines, n.Value)
	}
	for _, ch := range n.Children {
		switch ch.Tag {
		case "CONT":
			*lines = append(*lines, ch.Value)
		case "CONC":
			if ch.Value == "" {
				continue
			}
			if len(*lines) == 0 {
				*lines = append(*lines, ch.Value)
			} else {
				(*lines)[len(*lines)-1] += ch.Value
			}
		default:
			p.unknownTag(ch, el)
		}
	}
}

// loadAddress fills an ADDR structure: free-form continuation lines
// plus the structured sub-fields.
func (p *Parser) loadAddress(n *gedtree.Node, a *model.Address) {
	if n.Value != "" {
		a.Lines = append(a.Lines, n.Value)
	}
	for _, ch := range n.Children {
		switch ch.Tag {
		case "ADR1":
			a.Addr1 = p.text(ch)
		case "ADR2":
			a.Addr2 = p.text(ch)
		case "CITY":
			a.City = p.text(ch)
		case "STAE":
			a.StateProvince = p.text(ch)
		case "POST":
			a.PostalCode = p.text(ch)
		case "CTRY":
			a.Country = p.text(ch)
		case "CONT":
			a.Lines = append(a.Lines, ch.Value)
		case "CONC":
			if len(a.Lines) == 0 {
				a.Lines = append(a.Lines, ch.Value)
			} else {
				a.Lines[len(a.Lines)-1] += ch.Value
			}
		default:
			p.unknownTag(ch, a)
		}
	}
}

// loadChangeDate fills a CHAN structure. The optional TIME rides as
// the single child of DATE.
func (p *Parser) loadChangeDate(n *gedtree.Node, cd *model.ChangeDate) {
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			cd.Date = model.NewText(ch.Value)
			if len(ch.Children) > 0 {
				cd.Time = model.NewText(ch.Children[0].Value)
			}
		case "NOTE":
			p.loadNote(ch, &cd.Notes)
		default:
			p.unknownTag(ch, cd)
		}
	}
}

// loadUserReference fills a REFN structure; the optional TYPE rides as
// its single child.
func (p *Parser) loadUserReference(n *gedtree.Node, u *model.UserReference) {
	u.ReferenceNum = n.Value
	if len(n.Children) > 0 {
		u.Type = n.Children[0].Value
	}
}

// contactTag handles the PHON/WWW/FAX/EMAIL children common to
// individuals, repositories, submitters, corporations and events.
// WWW, FAX and EMAIL are 5.5.1 additions, so each one warns in a
// declared 5.5 file. Returns false if ch is none of the four.
func (p *Parser) contactTag(ch *gedtree.Node, where string, phones, www, fax, emails *[]*model.Text) bool {
	switch ch.Tag {
	case "PHON":
		*phones = append(*phones, p.text(ch))
	case "WWW":
		*www = append(*www, p.text(ch))
		if p.g55() {
			p.warn551(ch.Number, "WWW URL was specified for "+where)
		}
	case "FAX":
		*fax = append(*fax, p.text(ch))
		if p.g55() {
			p.warn551(ch.Number, "fax number was specified for "+where)
		}
	case "EMAIL":
		*emails = append(*emails, p.text(ch))
		if p.g55() {
			p.warn551(ch.Number, "email was specified for "+where)
		}
	default:
		return false
	}
	return true
}
