package model

// Document is the root of a parsed GEDCOM transmission. The maps key
// every top-level record by its @xref@; records referenced before they
// are declared appear here as placeholders until the declaration fills
// them in.
type Document struct {
	Element

	Header       *Header
	Trailer      *Trailer
	Submission   *Submission
	Individuals  map[string]*Individual
	Families     map[string]*Family
	Sources      map[string]*Source
	Repositories map[string]*Repository
	Notes        map[string]*Note
	Multimedia   map[string]*Multimedia
	Submitters   map[string]*Submitter
}

func NewDocument() *Document {
	return &Document{
		Individuals:  make(map[string]*Individual),
		Families:     make(map[string]*Family),
		Sources:      make(map[string]*Source),
		Repositories: make(map[string]*Repository),
		Notes:        make(map[string]*Note),
		Multimedia:   make(map[string]*Multimedia),
		Submitters:   make(map[string]*Submitter),
	}
}

// Trailer marks that the 0 TRLR record was seen.
type Trailer struct{}
