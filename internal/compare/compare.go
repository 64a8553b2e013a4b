// Package compare provides orderings for parsed records.
package compare

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dgallion1/gedgest/internal/model"
)

const unknownKey = "-unknown-"

// ByLastNameFirstName returns a comparison function ordering
// individuals by surname then given name, collated under the rules of
// tag. Use language.Und for locale-neutral ordering.
func ByLastNameFirstName(tag language.Tag) func(a, b *model.Individual) int {
	c := collate.New(tag)
	return func(a, b *model.Individual) int {
		return c.CompareString(SortKey(a), SortKey(b))
	}
}

// SortKey derives the "Surname, Given" key an individual sorts by.
// Explicit SURN/GIVN pieces win; otherwise the /Surname/ section of the
// basic name form is split out. Individuals with no usable name sort
// together under a fixed placeholder.
func SortKey(i *model.Individual) string {
	if i == nil || len(i.Names) == 0 {
		return unknownKey
	}
	n := i.Names[0]
	if n.Surname == nil && n.GivenName == nil {
		if idx := strings.IndexByte(n.Basic, '/'); idx >= 0 {
			return strings.Trim(n.Basic[idx:], "/") + ", " + strings.TrimSpace(n.Basic[:idx])
		}
		return unknownKey
	}
	return n.Surname.String() + ", " + n.GivenName.String()
}
