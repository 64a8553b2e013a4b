package gedline

import "strings"

// lexLine splits one physical line into level, optional @xref@, tag and
// value per the GEDCOM line grammar:
//
//	line = level SP [xref SP] tag [SP value]
func lexLine(raw string, num int) (Line, error) {
	ln := Line{Number: num}
	s := strings.TrimLeft(raw, " \t")

	// Level number.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		ln.Level = ln.Level*10 + int(s[i]-'0')
		i++
	}
	if i == 0 {
		return ln, structural(num, "line does not begin with a level number: %q", raw)
	}
	if i >= len(s) || s[i] != ' ' {
		return ln, structural(num, "level number is not followed by a space: %q", raw)
	}
	i++

	// Optional cross-reference id.
	if i < len(s) && s[i] == '@' {
		end := strings.IndexByte(s[i+1:], '@')
		if end < 0 {
			return ln, structural(num, "unterminated xref id: %q", raw)
		}
		ln.XrefID = s[i : i+end+2]
		i += end + 2
		if i >= len(s) || s[i] != ' ' {
			return ln, structural(num, "xref id is not followed by a space: %q", raw)
		}
		i++
	}

	// Tag.
	start := i
	for i < len(s) && isTagChar(s[i]) {
		i++
	}
	if i == start {
		return ln, structural(num, "missing tag: %q", raw)
	}
	ln.Tag = strings.ToUpper(s[start:i])

	// Optional value: everything after one separating space.
	if i < len(s) {
		if s[i] != ' ' {
			return ln, structural(num, "tag is not followed by a space: %q", raw)
		}
		ln.Value = s[i+1:]
	}
	return ln, nil
}

func isTagChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}
