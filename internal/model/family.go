package model

// Family is a FAM record. Husband, Wife and Children are shared
// handles into Document.Individuals, never owned copies.
type Family struct {
	Element

	Xref              string
	Husband           *Individual
	Wife              *Individual
	Children          []*Individual
	NumChildren       *Text
	Citations         []Citation
	Multimedia        []*Multimedia
	AutomatedRecordID *Text
	ChangeDate        *ChangeDate
	Notes             []*Note
	RestrictionNotice *Text
	RecFileNumber     *Text
	LdsSpouseSealings []*LdsSpouseSealing
	Submitters        []*Submitter
	UserReferences    []*UserReference
	Events            []*FamilyEvent
}
