package parser

import (
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadFamily loads a FAM record. HUSB, WIFE and CHIL resolve through
// the document collection, so a family may mention individuals that
// have not been declared yet.
func (p *Parser) loadFamily(n *gedtree.Node) {
	f := p.family(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "HUSB":
			f.Husband = p.individual(ch.Value)
		case "WIFE":
			f.Wife = p.individual(ch.Value)
		case "CHIL":
			f.Children = append(f.Children, p.individual(ch.Value))
		case "NCHI":
			f.NumChildren = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &f.Citations)
		case "OBJE":
			p.loadMultimediaLink(ch, &f.Multimedia)
		case "RIN":
			f.AutomatedRecordID = p.text(ch)
		case "CHAN":
			f.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, f.ChangeDate)
		case "NOTE":
			p.loadNote(ch, &f.Notes)
		case "RESN":
			f.RestrictionNotice = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "restriction notice was specified for family")
			}
		case "RFN":
			f.RecFileNumber = p.text(ch)
		case "SLGS":
			p.loadLdsSpouseSealing(ch, &f.LdsSpouseSealings)
		case "SUBM":
			f.Submitters = append(f.Submitters, p.submitter(ch.Value))
		case "REFN":
			u := &model.UserReference{}
			f.UserReferences = append(f.UserReferences, u)
			p.loadUserReference(ch, u)
		default:
			if t, ok := model.FamilyEventTypeForTag(ch.Tag); ok {
				p.loadFamilyEvent(ch, t, &f.Events)
			} else {
				p.unknownTag(ch, f)
			}
		}
	}
}
