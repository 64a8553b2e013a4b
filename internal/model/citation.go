package model

// Citation is a SOUR structure on another record. It is one of exactly
// two variants, discriminated at parse time by whether the SOUR value
// is an @xref@ pointer: CitationWithSource for pointers,
// CitationWithoutSource for inline text.
type Citation interface {
	CustomTagged
	citation()
}

// CitationWithSource cites a Source record by reference.
type CitationWithSource struct {
	Element

	Source        *Source
	WhereInSource *Text // PAGE
	EventCited    *Text // EVEN
	RoleInEvent   *Text // EVEN/ROLE
	Data          []*CitationData
	Certainty     *Text // QUAY
	Notes         []*Note
}

// CitationWithoutSource embeds the cited text directly.
type CitationWithoutSource struct {
	Element

	Description    []string
	TextFromSource [][]string
	Notes          []*Note
}

func (*CitationWithSource) citation()    {}
func (*CitationWithoutSource) citation() {}

// CitationData is a DATA structure inside a citation-with-source.
type CitationData struct {
	Element

	EntryDate  *Text
	SourceText [][]string
}
