package parser

import (
	"fmt"

	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

func (p *Parser) loadIndividualEvent(n *gedtree.Node, t model.IndividualEventType, events *[]*model.IndividualEvent) {
	e := &model.IndividualEvent{Type: t}
	e.YNull = n.Value
	*events = append(*events, e)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "TYPE":
			e.SubType = p.text(ch)
		case "DATE":
			e.Date = p.text(ch)
		case "PLAC":
			e.Place = &model.Place{}
			p.loadPlace(ch, e.Place)
		case "OBJE":
			p.loadMultimediaLink(ch, &e.Multimedia)
		case "NOTE":
			p.loadNote(ch, &e.Notes)
		case "SOUR":
			p.loadCitation(ch, &e.Citations)
		case "AGE":
			e.Age = p.text(ch)
		case "CAUS":
			e.Cause = p.text(ch)
		case "ADDR":
			e.Address = &model.Address{}
			p.loadAddress(ch, e.Address)
		case "AGNC":
			e.RespAgency = p.text(ch)
		case "RESN":
			e.RestrictionNotice = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "restriction notice was specified for individual event")
			}
		case "RELI":
			e.ReligiousAffiliation = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "religious affiliation was specified for individual event")
			}
		case "CONC":
			if e.Description == nil {
				e.Description = model.NewText(ch.Value)
			} else {
				e.Description.Value += ch.Value
			}
		case "CONT":
			if e.Description == nil {
				e.Description = model.NewText(ch.Value)
			} else {
				e.Description.Value += "\n" + ch.Value
			}
		case "FAMC":
			var families []*model.FamilyChild
			p.loadFamilyWhereChild(ch, &families)
			if len(families) > 0 {
				e.Family = families[0]
			}
		default:
			if !p.contactTag(ch, fmt.Sprintf("%s event", e.Type), &e.PhoneNumbers, &e.WwwURLs, &e.FaxNumbers, &e.Emails) {
				p.unknownTag(ch, e)
			}
		}
	}
}

// loadIndividualAttribute loads one of the descriptive facts. The
// attribute's value is its description, extendable by CONC children.
func (p *Parser) loadIndividualAttribute(n *gedtree.Node, t model.IndividualAttributeType, attributes *[]*model.IndividualAttribute) {
	a := &model.IndividualAttribute{Type: t}
	*attributes = append(*attributes, a)
	if t == model.AttributeFact && p.g55() {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"FACT tag specified on a GEDCOM 5.5 file at line %d, but FACT was not added until 5.5.1."+
				"  Data loaded but cannot be re-written unless GEDCOM version changes.", n.Number))
	}
	a.Description = model.NewText(n.Value)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "TYPE":
			a.SubType = p.text(ch)
		case "DATE":
			a.Date = p.text(ch)
		case "PLAC":
			a.Place = &model.Place{}
			p.loadPlace(ch, a.Place)
		case "AGE":
			a.Age = p.text(ch)
		case "CAUS":
			a.Cause = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &a.Citations)
		case "AGNC":
			a.RespAgency = p.text(ch)
		case "ADDR":
			a.Address = &model.Address{}
			p.loadAddress(ch, a.Address)
		case "OBJE":
			p.loadMultimediaLink(ch, &a.Multimedia)
		case "NOTE":
			p.loadNote(ch, &a.Notes)
		case "CONC":
			if a.Description == nil {
				a.Description = model.NewText(ch.Value)
			} else {
				a.Description.Value += ch.Value
			}
		default:
			if !p.contactTag(ch, fmt.Sprintf("%s attribute", a.Type), &a.PhoneNumbers, &a.WwwURLs, &a.FaxNumbers, &a.Emails) {
				p.unknownTag(ch, a)
			}
		}
	}
}

func (p *Parser) loadLdsIndividualOrdinance(n *gedtree.Node, t model.LdsIndividualOrdinanceType, list *[]*model.LdsIndividualOrdinance) {
	o := &model.LdsIndividualOrdinance{Type: t, YNull: n.Value}
	*list = append(*list, o)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			o.Date = p.text(ch)
		case "PLAC":
			o.Place = p.text(ch)
		case "STAT":
			o.Status = p.text(ch)
		case "TEMP":
			o.Temple = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &o.Citations)
		case "NOTE":
			p.loadNote(ch, &o.Notes)
		case "FAMC":
			var families []*model.FamilyChild
			p.loadFamilyWhereChild(ch, &families)
			if len(families) > 0 {
				o.FamilyWhereChild = families[0]
			}
		default:
			p.unknownTag(ch, o)
		}
	}
}

func (p *Parser) loadFamilyEvent(n *gedtree.Node, t model.FamilyEventType, events *[]*model.FamilyEvent) {
	e := &model.FamilyEvent{Type: t}
	e.YNull = n.Value
	*events = append(*events, e)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "TYPE":
			e.SubType = p.text(ch)
		case "DATE":
			e.Date = p.text(ch)
		case "PLAC":
			e.Place = &model.Place{}
			p.loadPlace(ch, e.Place)
		case "OBJE":
			p.loadMultimediaLink(ch, &e.Multimedia)
		case "NOTE":
			p.loadNote(ch, &e.Notes)
		case "SOUR":
			p.loadCitation(ch, &e.Citations)
		case "RESN":
			e.RestrictionNotice = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "restriction notice was specified for family event")
			}
		case "RELI":
			e.ReligiousAffiliation = p.text(ch)
			if p.g55() {
				p.warn551(ch.Number, "religious affiliation was specified for family event")
			}
		case "AGE":
			e.Age = p.text(ch)
		case "CAUS":
			e.Cause = p.text(ch)
		case "ADDR":
			e.Address = &model.Address{}
			p.loadAddress(ch, e.Address)
		case "AGNC":
			e.RespAgency = p.text(ch)
		case "HUSB":
			// the age rides on an AGE child of the HUSB tag
			if len(ch.Children) > 0 {
				e.HusbandAge = model.NewText(ch.Children[0].Value)
			}
		case "WIFE":
			if len(ch.Children) > 0 {
				e.WifeAge = model.NewText(ch.Children[0].Value)
			}
		default:
			if !p.contactTag(ch, fmt.Sprintf("%s family event", e.Type), &e.PhoneNumbers, &e.WwwURLs, &e.FaxNumbers, &e.Emails) {
				p.unknownTag(ch, e)
			}
		}
	}
}

func (p *Parser) loadLdsSpouseSealing(n *gedtree.Node, list *[]*model.LdsSpouseSealing) {
	o := &model.LdsSpouseSealing{}
	*list = append(*list, o)
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			o.Date = p.text(ch)
		case "PLAC":
			o.Place = p.text(ch)
		case "STAT":
			o.Status = p.text(ch)
		case "TEMP":
			o.Temple = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &o.Citations)
		case "NOTE":
			p.loadNote(ch, &o.Notes)
		default:
			p.unknownTag(ch, o)
		}
	}
}

// loadPlace loads a PLAC structure. The place name itself can continue
// across CONC/CONT children; the variations and map coordinates are
// 5.5.1 additions.
func (p *Parser) loadPlace(n *gedtree.Node, pl *model.Place) {
	pl.PlaceName = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "FORM":
			pl.PlaceFormat = p.text(ch)
		case "SOUR":
			p.loadCitation(ch, &pl.Citations)
		case "NOTE":
			p.loadNote(ch, &pl.Notes)
		case "CONC":
			pl.PlaceName += ch.Value
		case "CONT":
			pl.PlaceName += "\n" + ch.Value
		case "ROMN":
			if p.g55() {
				p.warn551(ch.Number, "a romanized variation was specified on a place")
			}
			pl.Romanized = append(pl.Romanized, p.loadNameVariation(ch))
		case "FONE":
			if p.g55() {
				p.warn551(ch.Number, "a phonetic variation was specified on a place")
			}
			pl.Phonetic = append(pl.Phonetic, p.loadNameVariation(ch))
		case "MAP":
			if p.g55() {
				p.warn551(ch.Number, "a map coordinate was specified on a place")
			}
			for _, gch := range ch.Children {
				switch gch.Tag {
				case "LAT":
					pl.Latitude = p.text(gch)
				case "LONG":
					pl.Longitude = p.text(gch)
				default:
					p.unknownTag(gch, pl)
				}
			}
		default:
			p.unknownTag(ch, pl)
		}
	}
}

func (p *Parser) loadNameVariation(n *gedtree.Node) *model.NameVariation {
	nv := &model.NameVariation{Variation: n.Value}
	for _, ch := range n.Children {
		if ch.Tag == "TYPE" {
			nv.VariationType = p.text(ch)
		} else {
			p.unknownTag(ch, nv)
		}
	}
	return nv
}
