package model

// Source is a SOUR record.
type Source struct {
	Element

	Xref               string
	Data               *SourceData
	Title              []string
	PublicationFacts   []string
	SourceText         []string
	SourceFiledBy      *Text
	OriginatorsAuthors []string
	RepositoryCitation *RepositoryCitation
	Notes              []*Note
	Multimedia         []*Multimedia
	UserReferences     []*UserReference
	RecIDNumber        *Text
	ChangeDate         *ChangeDate
}

// SourceData is the DATA structure on a source record.
type SourceData struct {
	Element

	EventsRecorded []*EventRecorded
	RespAgency     *Text
	Notes          []*Note
}

// EventRecorded is one EVEN under a source's DATA.
type EventRecorded struct {
	Element

	EventType    string
	DatePeriod   *Text
	Jurisdiction *Text
}

// RepositoryCitation is a REPO link from a source to a repository.
type RepositoryCitation struct {
	Element

	RepositoryXref string
	Notes          []*Note
	CallNumbers    []*SourceCallNumber
}

// SourceCallNumber is a CALN under a repository citation.
type SourceCallNumber struct {
	Element

	CallNumber *Text
	MediaType  *Text
}

// Repository is a REPO record.
type Repository struct {
	Element

	Xref           string
	Name           *Text
	Address        *Address
	PhoneNumbers   []*Text
	WwwURLs        []*Text
	FaxNumbers     []*Text
	Emails         []*Text
	Notes          []*Note
	UserReferences []*UserReference
	RecIDNumber    *Text
	ChangeDate     *ChangeDate
}
