// Package parser is the semantic layer of gedgest: a tag-dispatched
// recursive descent over the line tree that populates a typed
// model.Document.
//
// The parser is deliberately forgiving. Only lexical and structural
// problems abort a load; everything else - unknown tags, dangling
// cross-references, version mismatches - is recorded in the ordered
// Errors and Warnings lists while as much data as possible is loaded.
// Callers should always inspect both lists after Load returns.
package parser

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/gedgest/internal/gedline"
	"github.com/dgallion1/gedgest/internal/gedtree"
	"github.com/dgallion1/gedgest/internal/model"
)

// Parser loads one GEDCOM transmission. It is single-use: create one
// per input. The document is not mutated after Load returns.
type Parser struct {
	// Gedcom is the parsed document.
	Gedcom *model.Document

	// Errors holds semantic problems: data that was dropped or cannot
	// be losslessly round-tripped.
	Errors []string

	// Warnings holds conformance deviations: data that loaded fine but
	// does not match the declared GEDCOM version.
	Warnings []string

	// declared tracks xrefs that were defined by a top-level record,
	// as opposed to placeholders created by forward references.
	declared map[string]bool
}

func New() *Parser {
	return &Parser{
		Gedcom:   model.NewDocument(),
		declared: make(map[string]bool),
	}
}

// Load reads and parses an entire GEDCOM byte stream. A returned error
// is always structural (see gedline.StructuralError); semantic and
// conformance problems land in p.Errors and p.Warnings instead.
func (p *Parser) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return p.LoadBytes(data)
}

// LoadBytes is Load for in-memory data.
func (p *Parser) LoadBytes(data []byte) error {
	lines, warnings, err := gedline.ReadLines(data)
	if err != nil {
		return err
	}
	p.Warnings = append(p.Warnings, warnings...)

	root, err := gedtree.Build(lines)
	if err != nil {
		return err
	}
	p.loadRootItems(root)
	p.finalize()
	return nil
}

// g55 reports whether the transmission explicitly declares GEDCOM 5.5.
// Absent or unparseable version declarations count as 5.5.1.
func (p *Parser) g55() bool {
	h := p.Gedcom.Header
	return h != nil && h.GedcomVersion != nil && h.GedcomVersion.VersionNumber == model.V55
}

var xrefPattern = regexp.MustCompile(`^@[A-Za-z0-9_]+@$`)

// referencesAnotherNode reports whether a node's value is an @xref@
// pointer rather than inline text.
func referencesAnotherNode(n *gedtree.Node) bool {
	return xrefPattern.MatchString(n.Value)
}

// getOrCreate returns the record stored under xref, inserting a fresh
// placeholder first if nothing is there yet. Forward references and
// later declarations therefore share one object.
func getOrCreate[R any](m map[string]*R, xref string, fill func(*R)) *R {
	if r, ok := m[xref]; ok {
		return r
	}
	r := new(R)
	fill(r)
	m[xref] = r
	return r
}

func (p *Parser) individual(xref string) *model.Individual {
	return getOrCreate(p.Gedcom.Individuals, xref, func(i *model.Individual) { i.Xref = xref })
}

func (p *Parser) family(xref string) *model.Family {
	return getOrCreate(p.Gedcom.Families, xref, func(f *model.Family) { f.Xref = xref })
}

func (p *Parser) source(xref string) *model.Source {
	return getOrCreate(p.Gedcom.Sources, xref, func(s *model.Source) { s.Xref = xref })
}

func (p *Parser) repository(xref string) *model.Repository {
	return getOrCreate(p.Gedcom.Repositories, xref, func(r *model.Repository) { r.Xref = xref })
}

func (p *Parser) note(xref string) *model.Note {
	return getOrCreate(p.Gedcom.Notes, xref, func(n *model.Note) { n.Xref = xref })
}

func (p *Parser) multimedia(xref string) *model.Multimedia {
	return getOrCreate(p.Gedcom.Multimedia, xref, func(m *model.Multimedia) { m.Xref = xref })
}

func (p *Parser) submitter(xref string) *model.Submitter {
	return getOrCreate(p.Gedcom.Submitters, xref, func(s *model.Submitter) { s.Xref = xref })
}

// loadRootItems dispatches the level-0 records.
func (p *Parser) loadRootItems(root *gedtree.Node) {
	for _, ch := range root.Children {
		switch ch.Tag {
		case "HEAD":
			p.loadHeader(ch)
		case "SUBM":
			p.loadSubmitter(ch)
		case "SUBN":
			p.loadSubmission(ch)
		case "INDI":
			p.loadIndividual(ch)
		case "FAM":
			p.loadFamily(ch)
		case "SOUR":
			p.loadSource(ch)
		case "REPO":
			p.loadRepository(ch)
		case "NOTE":
			p.loadRootNote(ch)
		case "OBJE":
			p.loadMultimediaRecord(ch)
		case "TRLR":
			p.Gedcom.Trailer = &model.Trailer{}
		default:
			p.unknownTag(ch, p.Gedcom)
		}
	}
}

// finalize runs the post-pass checks: a transmission without a header,
// and placeholders that were referenced but never declared. Dangling
// placeholders stay reachable; the errors only flag them.
func (p *Parser) finalize() {
	if p.Gedcom.Header == nil {
		p.Errors = append(p.Errors, "No HEAD record found - file does not begin with a header")
	}
	p.reportDangling("INDI", keysOf(p.Gedcom.Individuals))
	p.reportDangling("FAM", keysOf(p.Gedcom.Families))
	p.reportDangling("SOUR", keysOf(p.Gedcom.Sources))
	p.reportDangling("REPO", keysOf(p.Gedcom.Repositories))
	p.reportDangling("NOTE", keysOf(p.Gedcom.Notes))
	p.reportDangling("OBJE", keysOf(p.Gedcom.Multimedia))
	p.reportDangling("SUBM", keysOf(p.Gedcom.Submitters))
}

func keysOf[R any](m map[string]*R) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Parser) reportDangling(recordTag string, xrefs []string) {
	for _, xref := range xrefs {
		if !p.declared[xref] {
			p.Errors = append(p.Errors, fmt.Sprintf(
				"Cross reference %s is used but no %s record with that xref is declared in the file",
				xref, recordTag))
		}
	}
}

// text wraps a node value, keeping user-defined child tags and flagging
// anything else underneath as unknown.
func (p *Parser) text(n *gedtree.Node) *model.Text {
	t := model.NewText(n.Value)
	for _, ch := range n.Children {
		p.unknownTag(ch, t)
	}
	return t
}

// unknownTag is the fallback for a tag the current context has no
// handler for. Underscore tags are user-defined and stored; anything
// else is a semantic error carrying the chain of enclosing tags.
func (p *Parser) unknownTag(n *gedtree.Node, el model.CustomTagged) {
	if strings.HasPrefix(n.Tag, "_") {
		el.AddCustomTag(n)
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line %d: Cannot handle tag %s", n.Number, n.Tag)
	for st := n.Parent; st != nil && st.Level >= 0; st = st.Parent {
		fmt.Fprintf(&sb, ", child of %s", st.Tag)
		if st.XrefID != "" {
			fmt.Fprintf(&sb, " %s", st.XrefID)
		}
		fmt.Fprintf(&sb, " on line %d", st.Number)
	}
	p.Errors = append(p.Errors, sb.String())
}

// warn551 records that a 5.5.1-only construct appeared in a declared
// 5.5 file. Callers gate on g55 before calling.
func (p *Parser) warn551(line int, what string) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(
		"GEDCOM version is 5.5 but %s on line %d, which is a GEDCOM 5.5.1 feature."+
			"  Data loaded but cannot be re-written unless GEDCOM version changes.",
		what, line))
}

// warn55 is the mirror image: a 5.5-only construct in a 5.5.1 file.
func (p *Parser) warn55(line int, what string) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(
		"GEDCOM version is 5.5.1 but %s on line %d, which is only valid in GEDCOM 5.5."+
			"  Data loaded but cannot be re-written unless GEDCOM version changes.",
		what, line))
}
