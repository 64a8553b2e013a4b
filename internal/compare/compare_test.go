package compare

import (
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/dgallion1/gedgest/internal/model"
)

func named(basic string, surname, given string) *model.Individual {
	pn := &model.PersonalName{Basic: basic}
	if surname != "" {
		pn.Surname = model.NewText(surname)
	}
	if given != "" {
		pn.GivenName = model.NewText(given)
	}
	return &model.Individual{Names: []*model.PersonalName{pn}}
}

func TestSortKeyFromPieces(t *testing.T) {
	i := named("John /Smith/", "Smith", "John")
	if got := SortKey(i); got != "Smith, John" {
		t.Errorf("SortKey = %q, want %q", got, "Smith, John")
	}
}

func TestSortKeyFallsBackToBasicForm(t *testing.T) {
	i := named("Jane /Doe/", "", "")
	if got := SortKey(i); got != "Doe, Jane" {
		t.Errorf("SortKey = %q, want %q", got, "Doe, Jane")
	}
}

func TestSortKeyUnknown(t *testing.T) {
	if got := SortKey(&model.Individual{}); got != "-unknown-" {
		t.Errorf("SortKey = %q, want -unknown-", got)
	}
	if got := SortKey(named("Cher", "", "")); got != "-unknown-" {
		t.Errorf("SortKey without slash = %q, want -unknown-", got)
	}
}

func TestByLastNameFirstNameOrders(t *testing.T) {
	people := []*model.Individual{
		named("Zed /Young/", "Young", "Zed"),
		named("Amy /Young/", "Young", "Amy"),
		named("Bob /Adams/", "Adams", "Bob"),
		{},
	}
	slices.SortFunc(people, ByLastNameFirstName(language.Und))

	want := []string{"-unknown-", "Adams, Bob", "Young, Amy", "Young, Zed"}
	for i, w := range want {
		if got := SortKey(people[i]); got != w {
			t.Errorf("position %d: got %q, want %q", i, got, w)
		}
	}
}
