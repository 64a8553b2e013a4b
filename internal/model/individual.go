package model

// Individual is an INDI record.
type Individual struct {
	Element

	Xref                    string
	Names                   []*PersonalName
	Sex                     *Text
	Address                 *Address
	PhoneNumbers            []*Text
	WwwURLs                 []*Text
	FaxNumbers              []*Text
	Emails                  []*Text
	Events                  []*IndividualEvent
	Attributes              []*IndividualAttribute
	LdsIndividualOrdinances []*LdsIndividualOrdinance
	Notes                   []*Note
	ChangeDate              *ChangeDate
	RecIDNumber             *Text
	PermanentRecFileNumber  *Text
	Multimedia              []*Multimedia
	RestrictionNotice       *Text
	Citations               []Citation
	Aliases                 []*Text
	FamiliesWhereSpouse     []*FamilySpouse
	FamiliesWhereChild      []*FamilyChild
	Associations            []*Association
	AncestorInterest        []*Submitter
	DescendantInterest      []*Submitter
	AncestralFileNumber     *Text
	UserReferences          []*UserReference
	Submitters              []*Submitter
}

// PersonalName is one NAME structure on an individual.
type PersonalName struct {
	Element

	Basic         string // the full form, e.g. "John /Smith/"
	Prefix        *Text
	GivenName     *Text
	Nickname      *Text
	SurnamePrefix *Text
	Surname       *Text
	Suffix        *Text
	Citations     []Citation
	Notes         []*Note
	Phonetic      []*PersonalNameVariation
	Romanized     []*PersonalNameVariation
}

// PersonalNameVariation is a FONE or ROMN variation of a personal name.
type PersonalNameVariation struct {
	Element

	Variation     string
	VariationType *Text
	Prefix        *Text
	GivenName     *Text
	Nickname      *Text
	SurnamePrefix *Text
	Surname       *Text
	Suffix        *Text
	Citations     []Citation
	Notes         []*Note
}

// Association links an individual to another record (ASSO).
type Association struct {
	Element

	AssociatedEntityXref string
	AssociatedEntityType *Text
	Relationship         *Text
	Notes                []*Note
	Citations            []Citation
}

// FamilyChild is a FAMC link from an individual to a family.
type FamilyChild struct {
	Element

	Family    *Family
	Pedigree  *Text
	AdoptedBy string
	Status    *Text
	Notes     []*Note
}

// FamilySpouse is a FAMS link from an individual to a family.
type FamilySpouse struct {
	Element

	Family *Family
	Notes  []*Note
}

// Submitter is a SUBM record.
type Submitter struct {
	Element

	Xref          string
	Name          *Text
	Address       *Address
	PhoneNumbers  []*Text
	WwwURLs       []*Text
	FaxNumbers    []*Text
	Emails        []*Text
	LanguagePref  []*Text
	ChangeDate    *ChangeDate
	Multimedia    []*Multimedia
	RecIDNumber   *Text
	RegFileNumber *Text
	Notes         []*Note
}

// Submission is the single SUBN record of a transmission.
type Submission struct {
	Element

	Xref                 string
	Submitter            *Submitter
	NameOfFamilyFile     *Text
	TempleCode           *Text
	AncestorsCount       *Text
	DescendantsCount     *Text
	OrdinanceProcessFlag *Text
	RecIDNumber          *Text
}
