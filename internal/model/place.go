package model

// Place is a PLAC structure. PlaceName accumulates CONC/CONT
// continuations directly.
type Place struct {
	Element

	PlaceName   string
	PlaceFormat *Text
	Citations   []Citation
	Notes       []*Note
	Phonetic    []*NameVariation
	Romanized   []*NameVariation
	Latitude    *Text
	Longitude   *Text
}

// NameVariation is a FONE or ROMN variation of a place name.
type NameVariation struct {
	Element

	Variation     string
	VariationType *Text
}

// Address is an ADDR structure: the free-form lines plus the optional
// structured fields.
type Address struct {
	Element

	Lines         []string
	Addr1         *Text
	Addr2         *Text
	City          *Text
	StateProvince *Text
	PostalCode    *Text
	Country       *Text
}

// ChangeDate is a CHAN structure.
type ChangeDate struct {
	Element

	Date  *Text
	Time  *Text
	Notes []*Note
}

// UserReference is a REFN structure.
type UserReference struct {
	Element

	ReferenceNum string
	Type         string
}
