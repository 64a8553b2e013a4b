package parser

import (
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

func (p *Parser) loadSource(n *gedtree.Node) {
	s := p.source(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATA":
			s.Data = &model.SourceData{}
			p.loadSourceData(ch, s.Data)
		case "TITL":
			p.loadMultiLines(ch, &s.Title, s)
		case "PUBL":
			p.loadMultiLines(ch, &s.PublicationFacts, s)
		case "TEXT":
			p.loadMultiLines(ch, &s.SourceText, s)
		case "ABBR":
			s.SourceFiledBy = p.text(ch)
		case "AUTH":
			p.loadMultiLines(ch, &s.OriginatorsAuthors, s)
		case "REPO":
			s.RepositoryCitation = p.loadRepositoryCitation(ch)
		case "NOTE":
			p.loadNote(ch, &s.Notes)
		case "OBJE":
			p.loadMultimediaLink(ch, &s.Multimedia)
		case "REFN":
			u := &model.UserReference{}
			s.UserReferences = append(s.UserReferences, u)
			p.loadUserReference(ch, u)
		case "RIN":
			s.RecIDNumber = p.text(ch)
		case "CHAN":
			s.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, s.ChangeDate)
		default:
			p.unknownTag(ch, s)
		}
	}
}

func (p *Parser) loadSourceData(n *gedtree.Node, d *model.SourceData) {
	for _, ch := range n.Children {
		switch ch.Tag {
		case "EVEN":
			p.loadSourceDataEventRecorded(ch, d)
		case "NOTE":
			p.loadNote(ch, &d.Notes)
		case "AGNC":
			d.RespAgency = p.text(ch)
		default:
			p.unknownTag(ch, d)
		}
	}
}

func (p *Parser) loadSourceDataEventRecorded(n *gedtree.Node, d *model.SourceData) {
	e := &model.EventRecorded{EventType: n.Value}
	d.EventsRecorded = append(d.EventsRecorded, e)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			e.DatePeriod = p.text(ch)
		case "PLAC":
			e.Jurisdiction = p.text(ch)
		default:
			p.unknownTag(ch, d)
		}
	}
}

// loadRepositoryCitation loads a REPO link on a source, including its
// CALN call numbers with optional MEDI children.
func (p *Parser) loadRepositoryCitation(n *gedtree.Node) *model.RepositoryCitation {
	r := &model.RepositoryCitation{RepositoryXref: n.Value}
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NOTE":
			p.loadNote(ch, &r.Notes)
		case "CALN":
			scn := &model.SourceCallNumber{CallNumber: model.NewText(ch.Value)}
			r.CallNumbers = append(r.CallNumbers, scn)
			for _, gch := range ch.Children {
				if gch.Tag == "MEDI" {
					scn.MediaType = p.text(gch)
				} else {
					p.unknownTag(gch, scn.CallNumber)
				}
			}
		default:
			p.unknownTag(ch, r)
		}
	}
	return r
}

func (p *Parser) loadRepository(n *gedtree.Node) {
	r := p.repository(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NAME":
			r.Name = p.text(ch)
		case "ADDR":
			r.Address = &model.Address{}
			p.loadAddress(ch, r.Address)
		case "NOTE":
			p.loadNote(ch, &r.Notes)
		case "REFN":
			u := &model.UserReference{}
			r.UserReferences = append(r.UserReferences, u)
			p.loadUserReference(ch, u)
		case "RIN":
			r.RecIDNumber = p.text(ch)
		case "CHAN":
			r.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, r.ChangeDate)
		default:
			if !p.contactTag(ch, "repository "+r.Xref, &r.PhoneNumbers, &r.WwwURLs, &r.FaxNumbers, &r.Emails) {
				p.unknownTag(ch, r)
			}
		}
	}
}
