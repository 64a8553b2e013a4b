package model

// EventDetail carries the fields shared by every event and attribute
// structure: dates, places, contact details, media, notes and
// citations.
type EventDetail struct {
	Element

	SubType              *Text // the TYPE tag
	Date                 *Text
	Place                *Place
	Address              *Address
	Age                  *Text
	Cause                *Text
	RespAgency           *Text
	ReligiousAffiliation *Text
	RestrictionNotice    *Text
	PhoneNumbers         []*Text
	WwwURLs              []*Text
	FaxNumbers           []*Text
	Emails               []*Text
	Multimedia           []*Multimedia
	Notes                []*Note
	Citations            []Citation
	Description          *Text
	YNull                string // the "Y" (or empty) on the event line itself
}

// IndividualEvent is a life event (BIRT, DEAT, ...) on an individual.
type IndividualEvent struct {
	EventDetail

	Type   IndividualEventType
	Family *FamilyChild // only for BIRT/CHR/ADOP
}

// IndividualAttribute is a descriptive fact (OCCU, RESI, ...) on an
// individual.
type IndividualAttribute struct {
	EventDetail

	Type IndividualAttributeType
}

// FamilyEvent is an event (MARR, DIV, ...) on a family.
type FamilyEvent struct {
	EventDetail

	Type       FamilyEventType
	HusbandAge *Text
	WifeAge    *Text
}

// LdsIndividualOrdinance is an LDS ordinance (BAPL, CONL, ENDL, SLGC)
// on an individual.
type LdsIndividualOrdinance struct {
	Element

	Type             LdsIndividualOrdinanceType
	YNull            string
	Date             *Text
	Place            *Text
	Status           *Text
	Temple           *Text
	Citations        []Citation
	Notes            []*Note
	FamilyWhereChild *FamilyChild
}

// LdsSpouseSealing is an SLGS structure on a family.
type LdsSpouseSealing struct {
	Element

	Date      *Text
	Place     *Text
	Status    *Text
	Temple    *Text
	Citations []Citation
	Notes     []*Note
}

type (
	IndividualEventType        string
	IndividualAttributeType    string
	FamilyEventType            string
	LdsIndividualOrdinanceType string
)

// FACT is the one attribute type added in 5.5.1; the parser warns when
// it shows up in a declared 5.5 file.
const AttributeFact IndividualAttributeType = "FACT"

var individualEventTags = map[string]IndividualEventType{
	"BIRT": "BIRT", "CHR": "CHR", "DEAT": "DEAT", "BURI": "BURI",
	"CREM": "CREM", "ADOP": "ADOP", "BAPM": "BAPM", "BARM": "BARM",
	"BASM": "BASM", "BLES": "BLES", "CHRA": "CHRA", "CONF": "CONF",
	"FCOM": "FCOM", "ORDN": "ORDN", "NATU": "NATU", "EMIG": "EMIG",
	"IMMI": "IMMI", "CENS": "CENS", "PROB": "PROB", "WILL": "WILL",
	"GRAD": "GRAD", "RETI": "RETI", "EVEN": "EVEN",
}

var individualAttributeTags = map[string]IndividualAttributeType{
	"CAST": "CAST", "DSCR": "DSCR", "EDUC": "EDUC", "IDNO": "IDNO",
	"NATI": "NATI", "NCHI": "NCHI", "NMR": "NMR", "OCCU": "OCCU",
	"PROP": "PROP", "RELI": "RELI", "RESI": "RESI", "SSN": "SSN",
	"TITL": "TITL", "FACT": "FACT",
}

var familyEventTags = map[string]FamilyEventType{
	"ANUL": "ANUL", "CENS": "CENS", "DIV": "DIV", "DIVF": "DIVF",
	"ENGA": "ENGA", "MARB": "MARB", "MARC": "MARC", "MARL": "MARL",
	"MARR": "MARR", "MARS": "MARS", "EVEN": "EVEN",
}

var ldsIndividualOrdinanceTags = map[string]LdsIndividualOrdinanceType{
	"BAPL": "BAPL", "CONL": "CONL", "ENDL": "ENDL", "SLGC": "SLGC",
}

func IndividualEventTypeForTag(tag string) (IndividualEventType, bool) {
	t, ok := individualEventTags[tag]
	return t, ok
}

func IndividualAttributeTypeForTag(tag string) (IndividualAttributeType, bool) {
	t, ok := individualAttributeTags[tag]
	return t, ok
}

func FamilyEventTypeForTag(tag string) (FamilyEventType, bool) {
	t, ok := familyEventTags[tag]
	return t, ok
}

func LdsIndividualOrdinanceTypeForTag(tag string) (LdsIndividualOrdinanceType, bool) {
	t, ok := ldsIndividualOrdinanceTags[tag]
	return t, ok
}
