package parser

import (
	"fmt"

	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// loadMultimediaLink appends an OBJE link to list. Pointers resolve
// through the document collection; inline links get their file
// references parsed here. A link rejected by loadFileReferences is not
// appended at all.
func (p *Parser) loadMultimediaLink(n *gedtree.Node, list *[]*model.Multimedia) {
	if referencesAnotherNode(n) {
		*list = append(*list, p.multimedia(n.Value))
		return
	}
	m := &model.Multimedia{}
	if p.loadFileReferences(m, n) {
		*list = append(*list, m)
	}
}

// loadFileReferences figures out whether an inline OBJE link is
// 5.5-style (one FILE paired with one FORM sibling) or 5.5.1-style
// (FORMs nested under the FILEs) and loads it accordingly. Returns
// false when the structure is rejected outright.
func (p *Parser) loadFileReferences(m *model.Multimedia, n *gedtree.Node) bool {
	fileTagCount, formTagCount := 0, 0
	for _, ch := range n.Children {
		switch ch.Tag {
		case "FILE":
			fileTagCount++
		case "FORM":
			formTagCount++
		}
	}
	if fileTagCount > 1 && p.g55() {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"GEDCOM version is 5.5, but multiple files referenced in multimedia reference on line %d, "+
				"which is only allowed in 5.5.1. "+
				"Data will be loaded, but cannot be written back out unless the GEDCOM version is changed to 5.5.1",
			n.Number))
	}
	if formTagCount == 0 && p.g55() {
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"GEDCOM version is 5.5, but there is not a FORM tag in the multimedia link on line %d, "+
				"a scenario which is only allowed in 5.5.1. "+
				"Data will be loaded, but cannot be written back out unless the GEDCOM version is changed to 5.5.1",
			n.Number))
	}
	if formTagCount > 1 {
		p.Errors = append(p.Errors, fmt.Sprintf(
			"Multiple FORM tags were found for a multimedia file reference at line %d - "+
				"this is not compliant with any GEDCOM standard - data not loaded", n.Number))
		return false
	}
	if fileTagCount > 1 || formTagCount < fileTagCount {
		p.loadFileReferences551(m, n.Children)
	} else {
		p.loadFileReference55(m, n.Children)
	}
	return true
}

// loadFileReference55 loads a 5.5-style link: a single file reference
// whose FORM rides alongside the FILE.
func (p *Parser) loadFileReference55(m *model.Multimedia, children []*gedtree.Node) {
	fr := &model.FileReference{}
	m.FileReferences = append(m.FileReferences, fr)
	for _, ch := range children {
		switch ch.Tag {
		case "FORM":
			fr.Format = p.text(ch)
		case "TITL":
			m.EmbeddedTitle = p.text(ch)
		case "FILE":
			fr.ReferenceToFile = p.text(ch)
		case "NOTE":
			p.loadNote(ch, &m.Notes)
		default:
			p.unknownTag(ch, m)
		}
	}
}

// loadFileReferences551 loads one or more 5.5.1-style file references,
// each FILE carrying its own FORM (with optional MEDI) underneath.
func (p *Parser) loadFileReferences551(m *model.Multimedia, children []*gedtree.Node) {
	for _, ch := range children {
		switch ch.Tag {
		case "FILE":
			fr := &model.FileReference{}
			m.FileReferences = append(m.FileReferences, fr)
			fr.ReferenceToFile = model.NewText(ch.Value)
			if len(ch.Children) != 1 {
				p.Errors = append(p.Errors,
					"Missing or multiple children nodes found under FILE node - GEDCOM 5.5.1 standard requires exactly 1 FORM node")
			}
			for _, gch := range ch.Children {
				if gch.Tag == "FORM" {
					fr.Format = model.NewText(gch.Value)
					for _, ggch := range gch.Children {
						if ggch.Tag == "MEDI" {
							fr.MediaType = p.text(ggch)
						} else {
							p.unknownTag(ggch, fr)
						}
					}
				} else {
					p.unknownTag(gch, fr)
				}
			}
		case "TITL":
			for _, fr := range m.FileReferences {
				fr.Title = model.NewText(ch.Value)
			}
		case "NOTE":
			p.loadNote(ch, &m.Notes)
			if !p.g55() {
				p.Warnings = append(p.Warnings, fmt.Sprintf(
					"GEDCOM version is 5.5.1, but a NOTE was found on a multimedia link on line %d, "+
						"which is no longer supported. "+
						"Data will be loaded, but cannot be written back out unless the GEDCOM version is changed to 5.5",
					ch.Number))
			}
		default:
			p.unknownTag(ch, m)
		}
	}
}

// loadMultimediaRecord sniffs which GEDCOM dialect a level-0 OBJE
// record uses (any FILE child means 5.5.1) and dispatches, warning when
// the dialect disagrees with the declared version.
func (p *Parser) loadMultimediaRecord(n *gedtree.Node) {
	fileTagCount := 0
	for _, ch := range n.Children {
		if ch.Tag == "FILE" {
			fileTagCount++
		}
	}
	if fileTagCount > 0 {
		if p.g55() {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"GEDCOM version was 5.5, but a 5.5.1-style multimedia record was found at line %d. "+
					"Data will be loaded, but might have problems being written until the version for the data is changed to 5.5.1",
				n.Number))
		}
		p.loadMultimediaRecord551(n)
	} else {
		if !p.g55() {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"GEDCOM version is 5.5.1, but a 5.5-style multimedia record was found at line %d. "+
					"Data will be loaded, but might have problems being written until the version for the data is changed to 5.5",
				n.Number))
		}
		p.loadMultimediaRecord55(n)
	}
}

// loadMultimediaRecord55 loads a 5.5-style OBJE record: embedded
// format, title, blob lines and possibly a chained continuation object.
func (p *Parser) loadMultimediaRecord55(n *gedtree.Node) {
	m := p.multimedia(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "FORM":
			m.EmbeddedFormat = p.text(ch)
		case "TITL":
			m.EmbeddedTitle = p.text(ch)
		case "NOTE":
			p.loadNote(ch, &m.Notes)
		case "SOUR":
			p.loadCitation(ch, &m.Citations)
		case "BLOB":
			p.loadMultiLines(ch, &m.Blob, m)
			if !p.g55() {
				p.Warnings = append(p.Warnings, fmt.Sprintf(
					"GEDCOM version is 5.5.1, but a BLOB tag was found at line %d. "+
						"Data will be loaded but will not be writeable unless GEDCOM version is changed to 5.5",
					ch.Number))
			}
		case "OBJE":
			var continued []*model.Multimedia
			p.loadMultimediaLink(ch, &continued)
			if len(continued) > 0 {
				m.ContinuedObject = continued[0]
			}
			if !p.g55() {
				p.Warnings = append(p.Warnings, fmt.Sprintf(
					"GEDCOM version is 5.5.1, but a chained OBJE tag was found at line %d. "+
						"Data will be loaded but will not be writeable unless GEDCOM version is changed to 5.5",
					ch.Number))
			}
		case "REFN":
			u := &model.UserReference{}
			m.UserReferences = append(m.UserReferences, u)
			p.loadUserReference(ch, u)
		case "RIN":
			m.RecIDNumber = p.text(ch)
		case "CHAN":
			m.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, m.ChangeDate)
		default:
			p.unknownTag(ch, m)
		}
	}
}

// loadMultimediaRecord551 loads a 5.5.1-style OBJE record: one or more
// FILE references, each requiring a FORM with an optional TYPE.
func (p *Parser) loadMultimediaRecord551(n *gedtree.Node) {
	m := p.multimedia(n.XrefID)
	p.declared[n.XrefID] = true
	for _, ch := range n.Children {
		switch ch.Tag {
		case "FILE":
			fr := &model.FileReference{}
			m.FileReferences = append(m.FileReferences, fr)
			fr.ReferenceToFile = model.NewText(ch.Value)
			for _, gch := range ch.Children {
				switch gch.Tag {
				case "FORM":
					fr.Format = model.NewText(gch.Value)
					if len(gch.Children) == 1 {
						ggch := gch.Children[0]
						if ggch.Tag == "TYPE" {
							fr.MediaType = p.text(ggch)
						} else {
							p.unknownTag(ggch, fr)
						}
					}
				case "TITL":
					fr.Title = p.text(gch)
				default:
					p.unknownTag(gch, fr)
				}
			}
			if fr.Format == nil {
				p.Errors = append(p.Errors, fmt.Sprintf(
					"FORM tag not found under FILE reference on line %d", n.Number))
			}
		case "NOTE":
			p.loadNote(ch, &m.Notes)
		case "SOUR":
			p.loadCitation(ch, &m.Citations)
		case "REFN":
			u := &model.UserReference{}
			m.UserReferences = append(m.UserReferences, u)
			p.loadUserReference(ch, u)
		case "RIN":
			m.RecIDNumber = p.text(ch)
		case "CHAN":
			m.ChangeDate = &model.ChangeDate{}
			p.loadChangeDate(ch, m.ChangeDate)
		default:
			p.unknownTag(ch, m)
		}
	}
}
