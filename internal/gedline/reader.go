package gedline

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/dgallion1/gedgest/internal/ansel"
)

// maxLineLength is the line length limit from the GEDCOM spec. Longer
// lines are accepted with a warning.
const maxLineLength = 255

type fileEncoding int

const (
	encANSEL fileEncoding = iota
	encASCII
	encUTF8
	encUTF16LE
	encUTF16BE
)

// ReadLines decodes data, splits it into physical lines and lexes each
// non-blank one. Returned warnings cover recoverable oddities such as
// over-length lines; a non-nil error is always a *StructuralError.
func ReadLines(data []byte) ([]Line, []string, error) {
	if len(data) == 0 {
		return nil, nil, structural(1, "file is empty")
	}

	enc, offset := detectEncoding(data)
	text, err := decode(data[offset:], enc)
	if err != nil {
		return nil, nil, structural(1, "cannot decode input: %v", err)
	}

	var (
		lines    []Line
		warnings []string
	)
	for num, raw := range splitLines(text) {
		num++ // physical line numbers are 1-based
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if n := sourceLen(raw, enc); n > maxLineLength {
			warnings = append(warnings, fmt.Sprintf(
				"Line %d is %d characters long, exceeding the GEDCOM maximum of %d - data loaded anyway",
				num, n, maxLineLength))
		}
		ln, err := lexLine(raw, num)
		if err != nil {
			return nil, warnings, err
		}
		lines = append(lines, ln)
	}
	if len(lines) == 0 {
		return nil, warnings, structural(1, "no GEDCOM lines found in input")
	}
	return lines, warnings, nil
}

// sourceLen is the length of a decoded line in the bytes of the source
// encoding. The 255 limit applies to the file's bytes, and ANSEL and
// UTF-16 characters widen or shrink when decoded to UTF-8.
func sourceLen(s string, enc fileEncoding) int {
	switch enc {
	case encANSEL:
		return utf8.RuneCountInString(s)
	case encUTF16LE, encUTF16BE:
		return 2 * len(utf16.Encode([]rune(s)))
	}
	return len(s)
}

// detectEncoding picks the encoding from the BOM if present, otherwise
// from a null-byte heuristic for BOM-less UTF-16, otherwise by sniffing
// the header CHAR tag. Legacy files with no declaration are ANSEL.
func detectEncoding(data []byte) (fileEncoding, int) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return encUTF8, 3
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return encUTF16LE, 2
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return encUTF16BE, 2
	// A GEDCOM always starts with "0", so a leading null byte on either
	// side of the first character means BOM-less UTF-16.
	case len(data) >= 2 && data[0] == '0' && data[1] == 0x00:
		return encUTF16LE, 0
	case len(data) >= 2 && data[0] == 0x00 && data[1] == '0':
		return encUTF16BE, 0
	}
	return sniffCharTag(data), 0
}

// sniffCharTag scans the first few lines for "1 CHAR <value>".
func sniffCharTag(data []byte) fileEncoding {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	for _, raw := range bytes.Split(head, []byte{'\n'}) {
		fields := strings.Fields(string(bytes.TrimSpace(raw)))
		if len(fields) < 3 || fields[0] != "1" || !strings.EqualFold(fields[1], "CHAR") {
			continue
		}
		switch strings.ToUpper(fields[2]) {
		case "ANSEL":
			return encANSEL
		case "UTF-8", "UTF8":
			return encUTF8
		case "ASCII", "ANSI":
			return encASCII
		case "UNICODE":
			return encUTF16LE
		}
	}
	return encANSEL
}

func decode(data []byte, enc fileEncoding) (string, error) {
	switch enc {
	case encANSEL:
		return ansel.DecodeString(data), nil
	case encASCII, encUTF8:
		return string(data), nil
	case encUTF16LE:
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(data)
		return string(out), err
	case encUTF16BE:
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(data)
		return string(out), err
	}
	return "", fmt.Errorf("unknown encoding %d", enc)
}

// splitLines splits text into physical lines, treating CR, LF and CRLF
// as one terminator each.
func splitLines(text string) []string {
	var out []string
	start := 0
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			out = append(out, text[start:i])
			i++
			start = i
		case '\r':
			out = append(out, text[start:i])
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
