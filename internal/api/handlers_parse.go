package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/dgallion1/gedgest/internal/compare"
	"github.com/dgallion1/gedgest/internal/gedline"
	"github.com/dgallion1/gedgest/internal/model"
	"github.com/dgallion1/gedgest/internal/parser"
	"github.com/dgallion1/gedgest/internal/validate"
)

type individualSummary struct {
	Xref  string `json:"xref"`
	Name  string `json:"name,omitempty"`
	Sex   string `json:"sex,omitempty"`
	Birth string `json:"birth,omitempty"`
	Death string `json:"death,omitempty"`
}

type noteSummary struct {
	Xref string `json:"xref"`
	Text string `json:"text"`
}

type parseResponse struct {
	File        string              `json:"file"`
	Version     string              `json:"version,omitempty"`
	Encoding    string              `json:"encoding,omitempty"`
	Counts      map[string]int      `json:"counts"`
	Individuals []individualSummary `json:"individuals"`
	Notes       []noteSummary       `json:"notes,omitempty"`
	Findings    []string            `json:"findings,omitempty"`
	Errors      []string            `json:"errors,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with some headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p := parser.New()
	if err := p.LoadBytes(data); err != nil {
		var se *gedline.StructuralError
		status := http.StatusUnprocessableEntity
		if !errors.As(err, &se) {
			status = http.StatusInternalServerError
		}
		jsonError(w, err.Error(), status)
		return
	}

	locale := r.FormValue("locale")
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	tag := language.Und
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		} else {
			s.log.Warn("unparseable locale, using neutral ordering", "locale", locale)
		}
	}

	stripHTMLNotes := r.FormValue("strip_html") == "true"

	resp := parseResponse{
		File:        sanitizeFilename(header.Filename),
		Counts:      counts(p.Gedcom),
		Individuals: individuals(p.Gedcom, tag),
		Notes:       notes(p.Gedcom, stripHTMLNotes),
		Findings: lo.Map(validate.Document(p.Gedcom), func(f validate.Finding, _ int) string {
			return f.String()
		}),
		Errors:   p.Errors,
		Warnings: p.Warnings,
	}
	if h := p.Gedcom.Header; h != nil {
		if h.GedcomVersion != nil {
			resp.Version = string(h.GedcomVersion.VersionNumber)
		}
		if h.CharacterSet != nil {
			resp.Encoding = h.CharacterSet.Name.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func counts(d *model.Document) map[string]int {
	return map[string]int{
		"individuals":  len(d.Individuals),
		"families":     len(d.Families),
		"sources":      len(d.Sources),
		"repositories": len(d.Repositories),
		"multimedia":   len(d.Multimedia),
		"notes":        len(d.Notes),
		"submitters":   len(d.Submitters),
	}
}

func individuals(d *model.Document, tag language.Tag) []individualSummary {
	people := lo.Values(d.Individuals)
	slices.SortFunc(people, compare.ByLastNameFirstName(tag))
	return lo.Map(people, func(i *model.Individual, _ int) individualSummary {
		sum := individualSummary{Xref: i.Xref, Sex: i.Sex.String()}
		if len(i.Names) > 0 {
			sum.Name = i.Names[0].Basic
		}
		for _, e := range i.Events {
			switch e.Type {
			case "BIRT":
				if sum.Birth == "" {
					sum.Birth = e.Date.String()
				}
			case "DEAT":
				if sum.Death == "" {
					sum.Death = e.Date.String()
				}
			}
		}
		return sum
	})
}

func notes(d *model.Document, stripTags bool) []noteSummary {
	xrefs := lo.Keys(d.Notes)
	slices.Sort(xrefs)
	return lo.Map(xrefs, func(xref string, _ int) noteSummary {
		text := strings.Join(d.Notes[xref].Lines, "\n")
		if stripTags {
			text = stripHTML(text)
		}
		return noteSummary{Xref: xref, Text: text}
	})
}

// stripHTML reduces markup that some genealogy programs embed in note
// text down to its text content.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
