// Package ansel converts between the ANSEL 8-bit character encoding
// (ANSI/NISO Z39.47) and Unicode. ANSEL is the default encoding of many
// legacy GEDCOM producers.
//
// The tables are built once at init and are read-only afterwards, so
// the package is safe for concurrent use.
package ansel

// pairs holds the canonical mapping between Unicode code points and
// ANSEL high bytes. Bytes 0x00-0x7F are identity-mapped and not listed.
// Bytes 0xE0-0xFE are combining diacritics; ANSEL places them before
// their base letter while Unicode places them after. This package does
// not reorder; it only maps code points.
var pairs = []struct {
	r rune
	b byte
}{
	{'Ł', 0xA1}, {'Ø', 0xA2}, {'Đ', 0xA3}, {'Þ', 0xA4},
	{'Æ', 0xA5}, {'Œ', 0xA6}, {'ʹ', 0xA7}, {'·', 0xA8},
	{'♭', 0xA9}, {'®', 0xAA}, {'±', 0xAB}, {'Ơ', 0xAC},
	{'Ư', 0xAD}, {'ʼ', 0xAE}, {'ʻ', 0xB0}, {'ł', 0xB1},
	{'ø', 0xB2}, {'đ', 0xB3}, {'þ', 0xB4}, {'æ', 0xB5},
	{'œ', 0xB6}, {'ʺ', 0xB7}, {'ı', 0xB8}, {'£', 0xB9},
	{'ð', 0xBA}, {'ơ', 0xBC}, {'ư', 0xBD}, {'°', 0xC0},
	{'ℓ', 0xC1}, {'℗', 0xC2}, {'©', 0xC3}, {'♯', 0xC4},
	{'¿', 0xC5}, {'¡', 0xC6}, {'ß', 0xCF},
	{'\u0309', 0xE0}, {'\u0300', 0xE1}, {'\u0301', 0xE2}, {'\u0302', 0xE3},
	{'\u0303', 0xE4}, {'\u0304', 0xE5}, {'\u0306', 0xE6}, {'\u0307', 0xE7},
	{'\u0308', 0xE8}, {'\u030C', 0xE9}, {'\u030A', 0xEA}, {'\uFE20', 0xEB},
	{'\uFE21', 0xEC}, {'\u0315', 0xED}, {'\u030B', 0xEE}, {'\u0310', 0xEF},
	{'\u0327', 0xF0}, {'\u0328', 0xF1}, {'\u0323', 0xF2}, {'\u0324', 0xF3},
	{'\u0325', 0xF4}, {'\u0333', 0xF5}, {'\u0332', 0xF6}, {'\u0326', 0xF7},
	{'\u031C', 0xF8}, {'\u032E', 0xF9}, {'\uFE22', 0xFA}, {'\uFE23', 0xFB},
	{'\u0313', 0xFE},
}

var (
	byteToRune [256]rune
	runeToByte map[rune]byte
)

func init() {
	runeToByte = make(map[rune]byte, 128+len(pairs))
	for i := 0; i < 0x80; i++ {
		byteToRune[i] = rune(i)
		runeToByte[rune(i)] = byte(i)
	}
	for i := 0x80; i < 0x100; i++ {
		byteToRune[i] = '?'
	}
	for _, p := range pairs {
		byteToRune[p.b] = p.r
		runeToByte[p.r] = p.b
	}
}

// Decode maps a single ANSEL byte to a rune. Decoding is total: high
// bytes with no ANSEL assignment decode to '?', never dropped.
func Decode(b byte) rune {
	return byteToRune[b]
}

// Encode maps a rune to its ANSEL byte. For runes outside the table it
// returns the low byte of the rune unchanged and false, leaving later
// layers to decide whether the loss matters.
func Encode(r rune) (byte, bool) {
	if b, ok := runeToByte[r]; ok {
		return b, true
	}
	return byte(r), false
}

// DecodeString decodes a whole ANSEL byte sequence.
func DecodeString(data []byte) string {
	out := make([]rune, len(data))
	for i, b := range data {
		out[i] = byteToRune[b]
	}
	return string(out)
}

// EncodeString encodes s to ANSEL bytes, best effort.
func EncodeString(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, _ := Encode(r)
		out = append(out, b)
	}
	return out
}
