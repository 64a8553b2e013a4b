package parser

import (
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadIndividual loads an INDI record. The record is fetched through
// the document collection so that an earlier forward reference (from a
// FAM, say) and this declaration resolve to the same object.
func (p *Parser) loadIndividual(n *gedtree.Node) {
	i := p.individual(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		if t, ok := model.IndividualEventTypeForTag(ch.Tag); ok {
			p.loadIndividualEvent(ch, t, &i.Events)
			continue
		}
		if t, ok := model.IndividualAttributeTypeForTag(ch.Tag); ok {
			p.loadIndividualAttribute(ch, t, &i.Attributes)
			continue
		}
		if t, ok := model.LdsIndividualOrdinanceTypeForTag(ch.Tag); ok {
			p.loadLdsIndividualOrdinance(ch, t, &i.LdsIndividualOrdinances)
			continue
		}
		switch ch.Tag {
		case "NAME":
			pn := &model.PersonalName{}
			i.Names = append(i.Names, pn)
			p.loadPersonalName(ch, pn)
		case "SEX":
			i.Sex = p.text(ch)
		case "ADDR":
			i.Address = &model.Address{}
			p.loadAddress(ch, i.Address)
		case "NOTE":
			p.loadNote(ch, &i.Notes)
		case "CHAN":
			i.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, i.ChangeDate)
		case "RIN":
			i.RecIDNumber = p.text(ch)
		case "RFN":
			i.PermanentRecFileNumber = p.text(ch)
		case "OBJE":
			p.loadMultimediaLink(ch, &i.Multimedia)
		case "RESN":
			i.RestrictionNotice = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &i.Citations)
		case "ALIA":
			i.Aliases = append(i.Aliases, p.text(ch))
		case "FAMS":
			p.loadFamilyWhereSpouse(ch, &i.FamiliesWhereSpouse)
		case "FAMC":
			p.loadFamilyWhereChild(ch, &i.FamiliesWhereChild)
		case "ASSO":
			p.loadAssociation(ch, &i.Associations)
		case "ANCI":
			i.AncestorInterest = append(i.AncestorInterest, p.submitter(ch.Value))
		case "DESI":
			i.DescendantInterest = append(i.DescendantInterest, p.submitter(ch.Value))
		case "AFN":
			i.AncestralFileNumber = p.text(ch)
		case "REFN":
			u := &model.UserReference{}
			i.UserReferences = append(i.UserReferences, u)
			p.loadUserReference(ch, u)
		case "SUBM":
			i.Submitters = append(i.Submitters, p.submitter(ch.Value))
		default:
			if !p.contactTag(ch, "individual "+i.Xref, &i.PhoneNumbers, &i.WwwURLs, &i.FaxNumbers, &i.Emails) {
				p.unknownTag(ch, i)
			}
		}
	}
}

func (p *Parser) loadPersonalName(n *gedtree.Node, pn *model.PersonalName) {
	pn.Basic = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NPFX":
			pn.Prefix = p.text(ch)
		case "GIVN":
			pn.GivenName = p.text(ch)
		case "NICK":
			pn.Nickname = p.text(ch)
		case "SPFX":
			pn.SurnamePrefix = p.text(ch)
		case "SURN":
			pn.Surname = p.text(ch)
		case "NSFX":
			pn.Suffix = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &pn.Citations)
		case "NOTE":
			p.loadNote(ch, &pn.Notes)
		case "ROMN":
			pnv := &model.PersonalNameVariation{}
			pn.Romanized = append(pn.Romanized, pnv)
			p.loadPersonalNameVariation(ch, pnv)
		case "FONE":
			pnv := &model.PersonalNameVariation{}
			pn.Phonetic = append(pn.Phonetic, pnv)
			p.loadPersonalNameVariation(ch, pnv)
		default:
			p.unknownTag(ch, pn)
		}
	}
}

func (p *Parser) loadPersonalNameVariation(n *gedtree.Node, pnv *model.PersonalNameVariation) {
	pnv.Variation = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NPFX":
			pnv.Prefix = p.text(ch)
		case "GIVN":
			pnv.GivenName = p.text(ch)
		case "NICK":
			pnv.Nickname = p.text(ch)
		case "SPFX":
			pnv.SurnamePrefix = p.text(ch)
		case "SURN":
			pnv.Surname = p.text(ch)
		case "NSFX":
			pnv.Suffix = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &pnv.Citations)
		case "NOTE":
			p.loadNote(ch, &pnv.Notes)
		case "TYPE":
			pnv.VariationType = p.text(ch)
		default:
			p.unknownTag(ch, pnv)
		}
	}
}

// loadAssociation loads an ASSO link. The xref is kept as a string
// because GEDCOM allows associations to records of several types.
func (p *Parser) loadAssociation(n *gedtree.Node, list *[]*model.Association) {
	a := &model.Association{AssociatedEntityXref: n.Value}
	*list = append(*list, a)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "RELA":
			a.Relationship = p.text(ch)
		case "NOTE":
			p.loadNote(ch, &a.Notes)
		case "SOUR":
			p.loadCitation(ch, &a.Citations)
		case "TYPE":
			a.AssociatedEntityType = p.text(ch)
		default:
			p.unknownTag(ch, a)
		}
	}
}

func (p *Parser) loadFamilyWhereChild(n *gedtree.Node, list *[]*model.FamilyChild) {
	fc := &model.FamilyChild{Family: p.family(n.Value)}
	*list = append(*list, fc)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NOTE":
			p.loadNote(ch, &fc.Notes)
		case "PEDI":
			fc.Pedigree = p.text(ch)
		case "ADOP":
			fc.AdoptedBy = ch.Value
		case "STAT":
			fc.Status = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "status was specified for child-to-family link")
			}
		default:
			p.unknownTag(ch, fc)
		}
	}
}

func (p *Parser) loadFamilyWhereSpouse(n *gedtree.Node, list *[]*model.FamilySpouse) {
	fs := &model.FamilySpouse{Family: p.family(n.Value)}
	*list = append(*list, fs)
	for _, ch := range n.Children {
		if ch.Tag == "NOTE" {
			p.loadNote(ch, &fs.Notes)
		} else {
			p.unknownTag(ch, fs)
		}
	}
}
