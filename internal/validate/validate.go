// Package validate runs structural sanity checks over a parsed
// document. It reports findings and never mutates the document.
package validate

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/dgallion1/gedgest/internal/model"
)

type Severity string

const (
	Error   Severity = "ERROR"
	Warning Severity = "WARNING"
)

// Finding is one problem discovered during validation.
type Finding struct {
	Severity Severity
	Message  string
	Context  string // xref or description of the offending record
}

func (f Finding) String() string {
	return fmt.Sprintf("%s [%s]: %s", f.Severity, f.Context, f.Message)
}

var xrefPattern = regexp.MustCompile(`^@[A-Za-z0-9_]+@$`)

// Document checks a parsed document and returns all findings, per
// collection in xref order. The order is stable for a given document.
func Document(d *model.Document) []Finding {
	var fs []Finding
	for _, xref := range sortedKeys(d.Individuals) {
		fs = append(fs, individual(xref, d.Individuals[xref])...)
	}
	for _, xref := range sortedKeys(d.Families) {
		fs = append(fs, family(xref, d.Families[xref])...)
	}
	for _, xref := range sortedKeys(d.Notes) {
		if n := d.Notes[xref]; n.Xref != xref {
			fs = append(fs, Finding{Error, fmt.Sprintf("note stored under key %s has xref %s", xref, n.Xref), xref})
		}
	}
	return fs
}

func sortedKeys[R any](m map[string]*R) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func individual(xref string, i *model.Individual) []Finding {
	var fs []Finding
	if i.Xref == "" {
		fs = append(fs, Finding{Error, "individual has no xref", xref})
	} else if i.Xref != xref {
		fs = append(fs, Finding{Error, fmt.Sprintf("individual stored under key %s has xref %s", xref, i.Xref), xref})
	}
	for _, a := range i.Associations {
		if a.AssociatedEntityType.String() == "" {
			fs = append(fs, Finding{Error, "association is missing its entity type", xref})
		}
		if !xrefPattern.MatchString(a.AssociatedEntityXref) {
			fs = append(fs, Finding{Error,
				fmt.Sprintf("association xref %q is not a well-formed cross reference", a.AssociatedEntityXref), xref})
		}
	}
	for _, a := range i.Attributes {
		if a.Type == "" {
			fs = append(fs, Finding{Error, "individual attribute requires a type", xref})
		}
	}
	fs = append(fs, citations(xref, i.Citations)...)
	return fs
}

func family(xref string, f *model.Family) []Finding {
	var fs []Finding
	if f.Xref != xref {
		fs = append(fs, Finding{Error, fmt.Sprintf("family stored under key %s has xref %s", xref, f.Xref), xref})
	}
	for _, c := range f.Children {
		if c == nil {
			fs = append(fs, Finding{Error, "family has a nil child entry", xref})
		}
	}
	fs = append(fs, citations(xref, f.Citations)...)
	return fs
}

func citations(context string, cs []model.Citation) []Finding {
	var fs []Finding
	for _, c := range cs {
		switch c := c.(type) {
		case *model.CitationWithSource:
			if c.Source == nil {
				fs = append(fs, Finding{Error, "citation with source has no source record", context})
			}
		case *model.CitationWithoutSource:
			if len(c.Description) == 0 && len(c.TextFromSource) == 0 {
				fs = append(fs, Finding{Warning, "citation carries neither description nor text", context})
			}
		}
	}
	return fs
}
