package model

// Note is a NOTE record or inline note structure. Lines holds the text
// after CONT/CONC reconstruction, one entry per logical line.
type Note struct {
	Element

	Xref           string // empty for inline notes
	Lines          []string
	Citations      []Citation
	UserReferences []*UserReference
	RecIDNumber    *Text
	ChangeDate     *ChangeDate
}

// Multimedia is an OBJE record or embedded link. A 5.5.1-style object
// carries FileReferences; a 5.5-style one carries the embedded
// format/title/blob fields and possibly a chained continuation object.
type Multimedia struct {
	Element

	Xref            string
	FileReferences  []*FileReference
	Notes           []*Note
	Citations       []Citation
	UserReferences  []*UserReference
	RecIDNumber     *Text
	ChangeDate      *ChangeDate
	Blob            []string
	ContinuedObject *Multimedia
	EmbeddedTitle   *Text
	EmbeddedFormat  *Text
}

// FileReference is one FILE under a 5.5.1-style multimedia object.
type FileReference struct {
	Element

	ReferenceToFile *Text
	Format          *Text
	MediaType       *Text
	Title           *Text
}
