package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/gedgest/internal/model"
)

const head551 = "0 HEAD\n1 GEDC\n2 VERS 5.5.1\n2 FORM LINEAGE-LINKED\n1 CHAR ASCII\n"

const head55 = "0 HEAD\n1 GEDC\n2 VERS 5.5\n2 FORM LINEAGE-LINKED\n1 CHAR ASCII\n"

func load(t *testing.T, src string) *Parser {
	t.Helper()
	p := New()
	if err := p.LoadBytes([]byte(src)); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	return p
}

func assertClean(t *testing.T, p *Parser) {
	t.Helper()
	if len(p.Errors) > 0 {
		t.Errorf("unexpected errors: %v", p.Errors)
	}
	if len(p.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", p.Warnings)
	}
}

func anyContains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestMinimalFile(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 NAME John /Smith/\n"+
		"0 TRLR\n")
	assertClean(t, p)

	if p.Gedcom.Header == nil || p.Gedcom.Header.GedcomVersion == nil {
		t.Fatal("header or version missing")
	}
	if v := p.Gedcom.Header.GedcomVersion.VersionNumber; v != model.V551 {
		t.Errorf("version = %q, want 5.5.1", v)
	}
	if p.Gedcom.Trailer == nil {
		t.Error("trailer not recorded")
	}
	i := p.Gedcom.Individuals["@I1@"]
	if i == nil {
		t.Fatal("individual not loaded")
	}
	if len(i.Names) != 1 || i.Names[0].Basic != "John /Smith/" {
		t.Errorf("names = %+v", i.Names)
	}
}

func TestLoadFromReader(t *testing.T) {
	p := New()
	if err := p.Load(strings.NewReader(head551 + "0 TRLR\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Gedcom.Trailer == nil {
		t.Error("trailer not recorded")
	}
}

func TestForwardReferenceSharesObject(t *testing.T) {
	p := load(t, head551+
		"0 @F1@ FAM\n"+
		"1 HUSB @I1@\n"+
		"1 CHIL @I2@\n"+
		"0 @I1@ INDI\n"+
		"1 NAME Pa /Jones/\n"+
		"0 @I2@ INDI\n"+
		"1 NAME Kid /Jones/\n"+
		"1 FAMC @F1@\n"+
		"0 TRLR\n")
	assertClean(t, p)

	f := p.Gedcom.Families["@F1@"]
	if f == nil {
		t.Fatal("family not loaded")
	}
	if f.Husband != p.Gedcom.Individuals["@I1@"] {
		t.Error("husband is not the same object as the declared individual")
	}
	if len(f.Children) != 1 || f.Children[0] != p.Gedcom.Individuals["@I2@"] {
		t.Error("child is not the same object as the declared individual")
	}
	kid := p.Gedcom.Individuals["@I2@"]
	if len(kid.FamiliesWhereChild) != 1 || kid.FamiliesWhereChild[0].Family != f {
		t.Error("FAMC does not resolve to the same family object")
	}
}

func TestDanglingXrefReported(t *testing.T) {
	p := load(t, head551+
		"0 @F1@ FAM\n"+
		"1 HUSB @I9@\n"+
		"0 TRLR\n")

	if !anyContains(p.Errors, "@I9@") || !anyContains(p.Errors, "INDI") {
		t.Errorf("errors = %v, want a dangling @I9@ INDI report", p.Errors)
	}
	// the placeholder stays reachable
	if p.Gedcom.Families["@F1@"].Husband != p.Gedcom.Individuals["@I9@"] {
		t.Error("placeholder individual should remain linked")
	}
}

func TestMissingHeader(t *testing.T) {
	p := load(t, "0 TRLR\n")
	if len(p.Errors) != 1 || !strings.Contains(p.Errors[0], "No HEAD record found") {
		t.Errorf("errors = %v, want exactly the missing header error", p.Errors)
	}
}

func TestNoteContConc(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 NOTE This is a note that goes on\n"+
		"2 CONC  and on\n"+
		"2 CONT \n"+
		"2 CONT and picks up again\n"+
		"0 TRLR\n")
	assertClean(t, p)

	i := p.Gedcom.Individuals["@I1@"]
	if len(i.Notes) != 1 {
		t.Fatalf("notes = %+v", i.Notes)
	}
	want := []string{"This is a note that goes on and on", "", "and picks up again"}
	got := i.Notes[0].Lines
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("line %d = %q, want %q", j, got[j], want[j])
		}
	}
}

func TestNoteRecordPointer(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 NOTE @N1@\n"+
		"0 @N1@ NOTE Shared text\n"+
		"0 TRLR\n")
	assertClean(t, p)

	i := p.Gedcom.Individuals["@I1@"]
	if len(i.Notes) != 1 || i.Notes[0] != p.Gedcom.Notes["@N1@"] {
		t.Error("note pointer should resolve to the note record")
	}
	if lines := p.Gedcom.Notes["@N1@"].Lines; len(lines) != 1 || lines[0] != "Shared text" {
		t.Errorf("note lines = %q", lines)
	}
}

func TestRootNoteWithoutIDIsError(t *testing.T) {
	p := load(t, head551+
		"0 NOTE floating text\n"+
		"0 TRLR\n")
	if !anyContains(p.Errors, "NOTE") {
		t.Errorf("errors = %v, want a root NOTE error", p.Errors)
	}
}

func TestCustomTagsPreserved(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 _UID 12345\n"+
		"2 _SRC mytool\n"+
		"1 NAME X /Y/\n"+
		"0 TRLR\n")
	assertClean(t, p)

	i := p.Gedcom.Individuals["@I1@"]
	if len(i.Custom) != 1 {
		t.Fatalf("custom tags = %+v", i.Custom)
	}
	c := i.Custom[0]
	if c.Tag != "_UID" || c.Value != "12345" {
		t.Errorf("custom tag = %s %q", c.Tag, c.Value)
	}
	if len(c.Children) != 1 || c.Children[0].Tag != "_SRC" {
		t.Errorf("nested custom tag not preserved: %+v", c.Children)
	}
}

func TestUnknownTagError(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 XYZZY whatever\n"+
		"0 TRLR\n")

	if len(p.Errors) != 1 {
		t.Fatalf("errors = %v, want one", p.Errors)
	}
	e := p.Errors[0]
	if !strings.Contains(e, "Cannot handle tag XYZZY") || !strings.Contains(e, "child of INDI @I1@") {
		t.Errorf("error = %q, want tag name and ancestor chain", e)
	}
	if _, ok := p.Gedcom.Individuals["@I1@"]; !ok {
		t.Error("individual should still be loaded")
	}
}

func TestCitationDiscrimination(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 SOUR @S1@\n"+
		"2 PAGE 42\n"+
		"2 QUAY 3\n"+
		"1 SOUR Dictated by grandma\n"+
		"2 CONT over Sunday dinner\n"+
		"2 TEXT her exact\n"+
		"3 CONC  words\n"+
		"0 @S1@ SOUR\n"+
		"1 TITL The Big Book\n"+
		"0 TRLR\n")
	assertClean(t, p)

	i := p.Gedcom.Individuals["@I1@"]
	if len(i.Citations) != 2 {
		t.Fatalf("citations = %+v", i.Citations)
	}
	ws, ok := i.Citations[0].(*model.CitationWithSource)
	if !ok {
		t.Fatalf("first citation is %T, want CitationWithSource", i.Citations[0])
	}
	if ws.Source != p.Gedcom.Sources["@S1@"] {
		t.Error("citation source is not the declared source record")
	}
	if ws.WhereInSource.String() != "42" || ws.Certainty.String() != "3" {
		t.Errorf("page/quay = %q/%q", ws.WhereInSource, ws.Certainty)
	}

	wos, ok := i.Citations[1].(*model.CitationWithoutSource)
	if !ok {
		t.Fatalf("second citation is %T, want CitationWithoutSource", i.Citations[1])
	}
	if len(wos.Description) != 2 || wos.Description[1] != "over Sunday dinner" {
		t.Errorf("description = %q", wos.Description)
	}
	if len(wos.TextFromSource) != 1 || wos.TextFromSource[0][0] != "her exact words" {
		t.Errorf("text from source = %q", wos.TextFromSource)
	}
}

func TestMultimediaRecord551InDeclared55Warns(t *testing.T) {
	p := load(t, head55+
		"0 @M1@ OBJE\n"+
		"1 FILE photo.jpg\n"+
		"2 FORM jpeg\n"+
		"3 TYPE photo\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "5.5.1-style multimedia record") {
		t.Errorf("warnings = %v, want dialect mismatch warning", p.Warnings)
	}
	m := p.Gedcom.Multimedia["@M1@"]
	if len(m.FileReferences) != 1 {
		t.Fatalf("file references = %+v", m.FileReferences)
	}
	fr := m.FileReferences[0]
	if fr.ReferenceToFile.String() != "photo.jpg" || fr.Format.String() != "jpeg" || fr.MediaType.String() != "photo" {
		t.Errorf("file reference = %+v", fr)
	}
}

func TestMultimediaRecord55InDeclared551Warns(t *testing.T) {
	p := load(t, head551+
		"0 @M1@ OBJE\n"+
		"1 FORM bmp\n"+
		"1 TITL An old scan\n"+
		"1 BLOB\n"+
		"2 CONT ZpZqZr\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "5.5-style multimedia record") {
		t.Errorf("warnings = %v, want dialect mismatch warning", p.Warnings)
	}
	if !anyContains(p.Warnings, "BLOB") {
		t.Errorf("warnings = %v, want BLOB warning", p.Warnings)
	}
	m := p.Gedcom.Multimedia["@M1@"]
	if m.EmbeddedFormat.String() != "bmp" || m.EmbeddedTitle.String() != "An old scan" {
		t.Errorf("embedded format/title = %q/%q", m.EmbeddedFormat, m.EmbeddedTitle)
	}
	if len(m.Blob) != 1 || m.Blob[0] != "ZpZqZr" {
		t.Errorf("blob = %q", m.Blob)
	}
}

func TestMultimediaLinkRejectedOnMultipleForms(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 OBJE\n"+
		"2 FILE a.bmp\n"+
		"2 FORM bmp\n"+
		"2 FORM gif\n"+
		"0 TRLR\n")

	if !anyContains(p.Errors, "Multiple FORM tags") {
		t.Errorf("errors = %v, want multiple FORM error", p.Errors)
	}
	if got := len(p.Gedcom.Individuals["@I1@"].Multimedia); got != 0 {
		t.Errorf("rejected link should not be kept, got %d", got)
	}
}

func TestDuplicateScalarLastWins(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 BIRT\n"+
		"2 DATE 1 JAN 1900\n"+
		"2 DATE 2 FEB 1901\n"+
		"0 TRLR\n")
	assertClean(t, p)

	ev := p.Gedcom.Individuals["@I1@"].Events
	if len(ev) != 1 || ev[0].Date.String() != "2 FEB 1901" {
		t.Errorf("events = %+v, want the later date to win", ev)
	}
}

func TestFactAttributeWarnsOn55(t *testing.T) {
	p := load(t, head55+
		"0 @I1@ INDI\n"+
		"1 FACT vegetarian\n"+
		"2 TYPE diet\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "FACT") {
		t.Errorf("warnings = %v, want FACT warning", p.Warnings)
	}
	a := p.Gedcom.Individuals["@I1@"].Attributes
	if len(a) != 1 || a[0].Type != model.AttributeFact || a[0].Description.String() != "vegetarian" {
		t.Errorf("attributes = %+v", a)
	}
}

func TestCopyrightMultilineWarnsOn55(t *testing.T) {
	p := load(t, "0 HEAD\n"+
		"1 GEDC\n"+
		"2 VERS 5.5\n"+
		"1 CHAR ASCII\n"+
		"1 COPR line one\n"+
		"2 CONT line two\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "copyright") {
		t.Errorf("warnings = %v, want copyright warning", p.Warnings)
	}
	if got := p.Gedcom.Header.CopyrightData; len(got) != 2 {
		t.Errorf("copyright data = %q", got)
	}
}

func TestContactTagsWarnOn55(t *testing.T) {
	p := load(t, head55+
		"0 @I1@ INDI\n"+
		"1 WWW http://example.com\n"+
		"1 PHON 555-1234\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "WWW URL") {
		t.Errorf("warnings = %v, want WWW warning", p.Warnings)
	}
	i := p.Gedcom.Individuals["@I1@"]
	if len(i.WwwURLs) != 1 || len(i.PhoneNumbers) != 1 {
		t.Errorf("contact lists = %+v / %+v", i.WwwURLs, i.PhoneNumbers)
	}
	// PHON exists in 5.5, no warning for it
	if anyContains(p.Warnings, "555-1234") {
		t.Errorf("PHON should not warn: %v", p.Warnings)
	}
}

func TestEmailWarnsOn55AndStillLoads(t *testing.T) {
	p := load(t, head55+
		"0 @I1@ INDI\n"+
		"1 EMAIL x@y\n"+
		"0 TRLR\n")

	i := p.Gedcom.Individuals["@I1@"]
	if len(i.Emails) != 1 || i.Emails[0].String() != "x@y" {
		t.Fatalf("emails = %+v, want x@y loaded", i.Emails)
	}
	if len(p.Warnings) != 1 || !strings.Contains(p.Warnings[0], "5.5.1 feature") {
		t.Errorf("warnings = %v, want one mentioning the 5.5.1 feature", p.Warnings)
	}
	if !strings.Contains(p.Warnings[0], "line 7") {
		t.Errorf("warning %q should carry the EMAIL line number", p.Warnings[0])
	}
}

func TestPure55FileHasNoWarnings(t *testing.T) {
	p := load(t, head55+
		"0 @I1@ INDI\n"+
		"1 NAME Jane /Doe/\n"+
		"1 PHON 555-0100\n"+
		"1 BIRT\n"+
		"2 DATE 1 JAN 1900\n"+
		"2 PLAC Somewhere\n"+
		"0 @F1@ FAM\n"+
		"1 HUSB @I1@\n"+
		"0 TRLR\n")
	assertClean(t, p)
}

func TestEventDescriptionContinuation(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 EVEN started a\n"+
		"2 CONC  business\n"+
		"2 CONT in town\n"+
		"2 TYPE Occupation\n"+
		"0 TRLR\n")
	assertClean(t, p)

	ev := p.Gedcom.Individuals["@I1@"].Events
	if len(ev) != 1 {
		t.Fatalf("events = %+v", ev)
	}
	// the event line value itself is the Y/null flag, not a description
	if ev[0].YNull != "started a" {
		t.Errorf("YNull = %q", ev[0].YNull)
	}
	if ev[0].Description.String() != " business\nin town" {
		t.Errorf("description = %q", ev[0].Description)
	}
}

func TestFamilyEventSpouseAges(t *testing.T) {
	p := load(t, head551+
		"0 @F1@ FAM\n"+
		"1 MARR\n"+
		"2 HUSB\n"+
		"3 AGE 25\n"+
		"2 WIFE\n"+
		"3 AGE 23\n"+
		"0 TRLR\n")
	assertClean(t, p)

	ev := p.Gedcom.Families["@F1@"].Events
	if len(ev) != 1 || ev[0].Type != "MARR" {
		t.Fatalf("events = %+v", ev)
	}
	if ev[0].HusbandAge.String() != "25" || ev[0].WifeAge.String() != "23" {
		t.Errorf("ages = %q/%q", ev[0].HusbandAge, ev[0].WifeAge)
	}
}

func TestHeaderFields(t *testing.T) {
	p := load(t, "0 HEAD\n"+
		"1 SOUR FTW\n"+
		"2 VERS 5.0\n"+
		"2 NAME Family Tree Whatever\n"+
		"2 CORP Acme Genealogy\n"+
		"3 ADDR 123 Main St\n"+
		"4 CITY Springfield\n"+
		"1 DATE 5 MAY 2005\n"+
		"2 TIME 10:11:12\n"+
		"1 SUBM @U1@\n"+
		"1 GEDC\n"+
		"2 VERS 5.5.1\n"+
		"2 FORM LINEAGE-LINKED\n"+
		"1 CHAR ASCII\n"+
		"0 @U1@ SUBM\n"+
		"1 NAME John Doe\n"+
		"0 TRLR\n")
	assertClean(t, p)

	h := p.Gedcom.Header
	ss := h.SourceSystem
	if ss == nil || ss.SystemID != "FTW" || ss.VersionNum.String() != "5.0" {
		t.Fatalf("source system = %+v", ss)
	}
	if ss.Corporation == nil || ss.Corporation.BusinessName != "Acme Genealogy" {
		t.Errorf("corporation = %+v", ss.Corporation)
	}
	if ss.Corporation.Address == nil || ss.Corporation.Address.City.String() != "Springfield" {
		t.Errorf("corporation address = %+v", ss.Corporation.Address)
	}
	if h.Date.String() != "5 MAY 2005" || h.Time.String() != "10:11:12" {
		t.Errorf("date/time = %q/%q", h.Date, h.Time)
	}
	if h.Submitter != p.Gedcom.Submitters["@U1@"] {
		t.Error("header submitter should be the declared submitter record")
	}
	if h.Submitter.Name.String() != "John Doe" {
		t.Errorf("submitter name = %q", h.Submitter.Name)
	}
}

func TestSubmissionHeaderCrossLink(t *testing.T) {
	p := load(t, head551+
		"0 @X1@ SUBN\n"+
		"1 FAMF MyFamilyFile\n"+
		"0 TRLR\n")
	assertClean(t, p)

	if p.Gedcom.Submission == nil || p.Gedcom.Submission.Xref != "@X1@" {
		t.Fatalf("submission = %+v", p.Gedcom.Submission)
	}
	if p.Gedcom.Header.Submission != p.Gedcom.Submission {
		t.Error("header should cross-reference the submission record")
	}
	if p.Gedcom.Submission.NameOfFamilyFile.String() != "MyFamilyFile" {
		t.Errorf("family file = %q", p.Gedcom.Submission.NameOfFamilyFile)
	}
}

func TestLdsOrdinanceWithFamily(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 SLGC\n"+
		"2 DATE 1 JAN 1990\n"+
		"2 TEMP SLAKE\n"+
		"2 FAMC @F1@\n"+
		"0 @F1@ FAM\n"+
		"0 TRLR\n")
	assertClean(t, p)

	ords := p.Gedcom.Individuals["@I1@"].LdsIndividualOrdinances
	if len(ords) != 1 || ords[0].Type != "SLGC" {
		t.Fatalf("ordinances = %+v", ords)
	}
	if ords[0].Temple.String() != "SLAKE" {
		t.Errorf("temple = %q", ords[0].Temple)
	}
	if ords[0].FamilyWhereChild == nil || ords[0].FamilyWhereChild.Family != p.Gedcom.Families["@F1@"] {
		t.Error("ordinance FAMC should resolve to the family record")
	}
}

func TestSourceWithRepositoryCitation(t *testing.T) {
	p := load(t, head551+
		"0 @S1@ SOUR\n"+
		"1 TITL A title\n"+
		"2 CONC  continued\n"+
		"1 AUTH Somebody\n"+
		"1 REPO @R1@\n"+
		"2 CALN 123-456\n"+
		"3 MEDI microfilm\n"+
		"0 @R1@ REPO\n"+
		"1 NAME Library\n"+
		"0 TRLR\n")
	assertClean(t, p)

	s := p.Gedcom.Sources["@S1@"]
	if len(s.Title) != 1 || s.Title[0] != "A title continued" {
		t.Errorf("title = %q", s.Title)
	}
	rc := s.RepositoryCitation
	if rc == nil || rc.RepositoryXref != "@R1@" {
		t.Fatalf("repository citation = %+v", rc)
	}
	if len(rc.CallNumbers) != 1 || rc.CallNumbers[0].CallNumber.String() != "123-456" ||
		rc.CallNumbers[0].MediaType.String() != "microfilm" {
		t.Errorf("call numbers = %+v", rc.CallNumbers)
	}
	if p.Gedcom.Repositories["@R1@"].Name.String() != "Library" {
		t.Errorf("repository = %+v", p.Gedcom.Repositories["@R1@"])
	}
}

func TestPlaceMapWarnsOn55(t *testing.T) {
	p := load(t, head55+
		"0 @I1@ INDI\n"+
		"1 BIRT\n"+
		"2 PLAC Springfield\n"+
		"3 MAP\n"+
		"4 LAT N39.8\n"+
		"4 LONG W89.6\n"+
		"0 TRLR\n")

	if !anyContains(p.Warnings, "map coordinate") {
		t.Errorf("warnings = %v, want map coordinate warning", p.Warnings)
	}
	pl := p.Gedcom.Individuals["@I1@"].Events[0].Place
	if pl.PlaceName != "Springfield" || pl.Latitude.String() != "N39.8" || pl.Longitude.String() != "W89.6" {
		t.Errorf("place = %+v", pl)
	}
}

func TestAnselDefaultEncoding(t *testing.T) {
	src := append([]byte("0 HEAD\n1 CHAR ANSEL\n0 @I1@ INDI\n1 NAME "), 0xA1)
	src = append(src, []byte("odz /Nowak/\n0 TRLR\n")...)

	p := New()
	if err := p.LoadBytes(src); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	got := p.Gedcom.Individuals["@I1@"].Names[0].Basic
	if got != "Łodz /Nowak/" {
		t.Errorf("name = %q, want decoded ANSEL uppercase L-slash", got)
	}
}

func TestAssociationLoads(t *testing.T) {
	p := load(t, head551+
		"0 @I1@ INDI\n"+
		"1 ASSO @I2@\n"+
		"2 TYPE INDI\n"+
		"2 RELA godfather\n"+
		"0 @I2@ INDI\n"+
		"0 TRLR\n")
	assertClean(t, p)

	as := p.Gedcom.Individuals["@I1@"].Associations
	if len(as) != 1 || as[0].AssociatedEntityXref != "@I2@" {
		t.Fatalf("associations = %+v", as)
	}
	if as[0].AssociatedEntityType.String() != "INDI" || as[0].Relationship.String() != "godfather" {
		t.Errorf("association = %+v", as[0])
	}
}
