package model

// SupportedVersion is a GEDCOM version the parser understands. The
// zero value means the file never declared one; conformance checks then
// assume 5.5.1.
type SupportedVersion string

const (
	V55  SupportedVersion = "5.5"
	V551 SupportedVersion = "5.5.1"
)

// ParseVersion maps a VERS value to a supported version.
func ParseVersion(s string) (SupportedVersion, bool) {
	switch s {
	case "5.5":
		return V55, true
	case "5.5.1":
		return V551, true
	}
	return "", false
}

// Header is the HEAD record.
type Header struct {
	Element

	SourceSystem      *SourceSystem
	DestinationSystem *Text
	Date              *Text
	Time              *Text
	CharacterSet      *CharacterSet
	Submitter         *Submitter
	Submission        *Submission
	FileName          *Text
	GedcomVersion     *GedcomVersion
	CopyrightData     []string
	Language          *Text
	PlaceHierarchy    *Text
	Notes             []string
}

// GedcomVersion is the GEDC structure in the header.
type GedcomVersion struct {
	Element

	VersionNumber SupportedVersion
	Form          *Text
}

// CharacterSet is the CHAR structure in the header.
type CharacterSet struct {
	Element

	Name       *Text
	VersionNum *Text
}

// SourceSystem describes the system that produced the transmission.
type SourceSystem struct {
	Element

	SystemID    string
	VersionNum  *Text
	ProductName *Text
	Corporation *Corporation
	SourceData  *HeaderSourceData
}

// Corporation is the CORP structure under the source system.
type Corporation struct {
	Element

	BusinessName string
	Address      *Address
	PhoneNumbers []*Text
	WwwURLs      []*Text
	FaxNumbers   []*Text
	Emails       []*Text
}

// HeaderSourceData is the DATA structure under the source system.
type HeaderSourceData struct {
	Element

	Name        string
	PublishDate *Text
	Copyright   *Text
}
