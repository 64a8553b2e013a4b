package parser

import (
	"fmt"

	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

func (p *Parser) loadHeader(n *gedtree.Node) {
	h := &model.Header{}
	p.Gedcom.Header = h
	for _, ch := range n.Children {
		switch ch.Tag {
		case "SOUR":
			h.SourceSystem = &model.SourceSystem{}
			p.loadSourceSystem(ch, h.SourceSystem)
		case "DEST":
			h.DestinationSystem = p.text(ch)
		case "DATE":
			h.Date = p.text(ch)
			if len(ch.Children) > 0 {
				h.Time = model.NewText(ch.Children[0].Value)
			}
		case "CHAR":
			h.CharacterSet = &model.CharacterSet{Name: model.NewText(ch.Value)}
			if len(ch.Children) > 0 {
				h.CharacterSet.VersionNum = model.NewText(ch.Children[0].Value)
			}
		case "SUBM":
			h.Submitter = p.submitter(ch.Value)
		case "FILE":
			h.FileName = p.text(ch)
		case "GEDC":
			h.GedcomVersion = &model.GedcomVersion{}
			p.loadGedcomVersion(ch, h.GedcomVersion)
		case "COPR":
			p.loadMultiLines(ch, &h.CopyrightData, h)
			if p.g55() && len(h.CopyrightData) > 1 {
				p.Warnings = append(p.Warnings,
					"GEDCOM version is 5.5, but multiple lines of copyright data were specified, "+
						"which is only allowed in GEDCOM 5.5.1."+
						"  Data loaded but cannot be re-written unless GEDCOM version changes.")
			}
		case "SUBN":
			// The header cross-references the root-level SUBN record.
			// It may not have been loaded yet; loadSubmission fills in
			// the back-reference for that order.
			if h.Submission == nil {
				h.Submission = p.Gedcom.Submission
			}
		case "LANG":
			h.Language = p.text(ch)
		case "PLAC":
			if len(ch.Children) > 0 {
				h.PlaceHierarchy = model.NewText(ch.Children[0].Value)
			}
		case "NOTE":
			p.loadMultiLines(ch, &h.Notes, h)
		default:
			p.unknownTag(ch, h)
		}
	}
}

func (p *Parser) loadGedcomVersion(n *gedtree.Node, gv *model.GedcomVersion) {
	for _, ch := range n.Children {
		switch ch.Tag {
		case "VERS":
			v, ok := model.ParseVersion(ch.Value)
			if !ok {
				p.Errors = append(p.Errors, fmt.Sprintf(
					"Unsupported GEDCOM version %s on line %d - only 5.5 and 5.5.1 are supported", ch.Value, ch.Number))
			}
			gv.VersionNumber = v
		case "FORM":
			gv.Form = p.text(ch)
		default:
			p.unknownTag(ch, gv)
		}
	}
}

func (p *Parser) loadSourceSystem(n *gedtree.Node, ss *model.SourceSystem) {
	ss.SystemID = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "VERS":
			ss.VersionNum = p.text(ch)
		case "NAME":
			ss.ProductName = p.text(ch)
		case "CORP":
			ss.Corporation = &model.Corporation{}
			p.loadCorporation(ch, ss.Corporation)
		case "DATA":
			ss.SourceData = &model.HeaderSourceData{}
			p.loadHeaderSourceData(ch, ss.SourceData)
		default:
			p.unknownTag(ch, ss)
		}
	}
}

func (p *Parser) loadCorporation(n *gedtree.Node, c *model.Corporation) {
	c.BusinessName = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "ADDR":
			c.Address = &model.Address{}
			p.loadAddress(ch, c.Address)
		default:
			if !p.contactTag(ch, "the corporation in the source system", &c.PhoneNumbers, &c.WwwURLs, &c.FaxNumbers, &c.Emails) {
				p.unknownTag(ch, c)
			}
		}
	}
}

func (p *Parser) loadHeaderSourceData(n *gedtree.Node, sd *model.HeaderSourceData) {
	sd.Name = n.Value
	for _, ch := range n.Children {
		switch ch.Tag {
		case "DATE":
			sd.PublishDate = p.text(ch)
		case "COPR":
			sd.Copyright = p.text(ch)
		default:
			p.unknownTag(ch, sd)
		}
	}
}

// loadSubmission loads the single SUBN record and wires the
// header-side cross-reference to it if the header was loaded first (or
// has not been loaded at all yet).
func (p *Parser) loadSubmission(n *gedtree.Node) {
	s := &model.Submission{Xref: n.XrefID}
	p.Gedcom.Submission = s
	if p.Gedcom.Header == nil {
		p.Gedcom.Header = &model.Header{}
	}
	if p.Gedcom.Header.Submission == nil {
		p.Gedcom.Header.Submission = s
	}
	for _, ch := range n.Children {
		switch ch.Tag {
		case "SUBM":
			s.Submitter = p.submitter(ch.Value)
		case "FAMF":
			s.NameOfFamilyFile = p.text(ch)
		case "TEMP":
			s.TempleCode = p.text(ch)
		case "ANCE":
			s.AncestorsCount = p.text(ch)
		case "DESC":
			s.DescendantsCount = p.text(ch)
		case "ORDI":
			s.OrdinanceProcessFlag = p.text(ch)
		case "RIN":
			s.RecIDNumber = p.text(ch)
		default:
			p.unknownTag(ch, s)
		}
	}
}

func (p *Parser) loadSubmitter(n *gedtree.Node) {
	s := p.submitter(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "NAME":
			s.Name = p.text(ch)
		case "ADDR":
			s.Address = &model.Address{}
			p.loadAddress(ch, s.Address)
		case "LANG":
			s.LanguagePref = append(s.LanguagePref, p.text(ch))
		case "CHAN":
			s.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, s.ChangeDate)
		case "OBJE":
			p.loadMultimediaLink(ch, &s.Multimedia)
		case "RIN":
			s.RecIDNumber = p.text(ch)
		case "RFN":
			s.RegFileNumber = p.text(ch)
		case "NOTE":
			p.loadNote(ch, &s.Notes)
		default:
			if !p.contactTag(ch, "submitter "+n.XrefID, &s.PhoneNumbers, &s.WwwURLs, &s.FaxNumbers, &s.Emails) {
				p.unknownTag(ch, s)
			}
		}
	}
}
