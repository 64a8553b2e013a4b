package validate

import (
	"strings"
	"testing"

	"github.com/dgallion1/gedgest/internal/model"
)

func TestCleanDocumentHasNoFindings(t *testing.T) {
	d := model.NewDocument()
	i := &model.Individual{Xref: "@I1@"}
	d.Individuals["@I1@"] = i
	d.Families["@F1@"] = &model.Family{Xref: "@F1@", Children: []*model.Individual{i}}

	if fs := Document(d); len(fs) != 0 {
		t.Errorf("expected no findings, got %v", fs)
	}
}

func TestMismatchedKeysAreReported(t *testing.T) {
	d := model.NewDocument()
	d.Individuals["@I1@"] = &model.Individual{Xref: "@I2@"}

	fs := Document(d)
	if len(fs) != 1 || fs[0].Severity != Error {
		t.Fatalf("findings = %v, want one error", fs)
	}
	if !strings.Contains(fs[0].Message, "@I2@") {
		t.Errorf("message %q should name the stray xref", fs[0].Message)
	}
}

func TestFindingsOrderedByXref(t *testing.T) {
	d := model.NewDocument()
	d.Individuals["@I2@"] = &model.Individual{Xref: "@X@"}
	d.Individuals["@I1@"] = &model.Individual{Xref: "@X@"}
	d.Families["@F1@"] = &model.Family{Xref: "@X@"}

	fs := Document(d)
	if len(fs) != 3 {
		t.Fatalf("got %d findings, want 3: %v", len(fs), fs)
	}
	if fs[0].Context != "@I1@" || fs[1].Context != "@I2@" || fs[2].Context != "@F1@" {
		t.Errorf("findings out of order: %v", fs)
	}
}

func TestAssociationChecks(t *testing.T) {
	d := model.NewDocument()
	d.Individuals["@I1@"] = &model.Individual{
		Xref: "@I1@",
		Associations: []*model.Association{
			{AssociatedEntityXref: "not-an-xref"},
		},
	}

	fs := Document(d)
	if len(fs) != 2 {
		t.Fatalf("got %d findings, want 2 (missing type, bad xref): %v", len(fs), fs)
	}
}

func TestCitationChecks(t *testing.T) {
	d := model.NewDocument()
	d.Individuals["@I1@"] = &model.Individual{
		Xref: "@I1@",
		Citations: []model.Citation{
			&model.CitationWithSource{},
			&model.CitationWithoutSource{},
		},
	}

	fs := Document(d)
	var errs, warns int
	for _, f := range fs {
		switch f.Severity {
		case Error:
			errs++
		case Warning:
			warns++
		}
	}
	if errs != 1 || warns != 1 {
		t.Errorf("got %d errors and %d warnings, want 1 and 1: %v", errs, warns, fs)
	}
}
