// Package gedline turns a raw GEDCOM byte stream into lexed logical
// lines. It detects the character encoding (BOM first, then the header
// CHAR tag), normalizes line endings, and splits each line into its
// level, optional cross-reference id, tag, and value.
package gedline

import "fmt"

// Line is one lexed GEDCOM line.
type Line struct {
	Level  int
	XrefID string // includes the surrounding @s, empty if absent
	Tag    string // uppercased
	Value  string
	Number int // 1-based physical line number
}

// StructuralError is a fatal lexical or structural problem. No partial
// result is usable once one is returned.
type StructuralError struct {
	Line int
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func structural(line int, format string, args ...any) error {
	return &StructuralError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
