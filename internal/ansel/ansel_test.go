package ansel

import "testing"

func TestRoundTripTablePairs(t *testing.T) {
	for _, p := range pairs {
		got := Decode(p.b)
		if got != p.r {
			t.Errorf("Decode(0x%02X) = %U, want %U", p.b, got, p.r)
		}
		b, ok := Encode(p.r)
		if !ok || b != p.b {
			t.Errorf("Encode(%U) = 0x%02X, %v, want 0x%02X, true", p.r, b, ok, p.b)
		}
	}
}

func TestLowBytesIdentity(t *testing.T) {
	for i := 0; i < 0x80; i++ {
		if Decode(byte(i)) != rune(i) {
			t.Fatalf("Decode(0x%02X) not identity", i)
		}
		b, ok := Encode(rune(i))
		if !ok || b != byte(i) {
			t.Fatalf("Encode(%U) not identity", rune(i))
		}
	}
}

func TestUnmappedHighByteDecodesToQuestionMark(t *testing.T) {
	// 0xBE and 0xFF have no ANSEL assignment.
	for _, b := range []byte{0x80, 0xBE, 0xFF} {
		if Decode(b) != '?' {
			t.Errorf("Decode(0x%02X) = %q, want '?'", b, Decode(b))
		}
	}
}

func TestEncodeUnknownRunePassesLowByte(t *testing.T) {
	r := '€' // U+20AC, not in ANSEL
	b, ok := Encode(r)
	if ok {
		t.Fatal("expected ok=false for unmapped rune")
	}
	if b != byte(r) {
		t.Errorf("expected low byte 0x%02X, got 0x%02X", byte(r), b)
	}
}

func TestDecodeString(t *testing.T) {
	// "Łódź" spelled with precomposed Ł and combining acute after z
	// would need reordering; here just check the one-to-one mapping.
	got := DecodeString([]byte{0xA1, 'o', 'd', 'z'})
	if got != "Łodz" {
		t.Errorf("DecodeString = %q", got)
	}
	if string(EncodeString("Łodz")) != string([]byte{0xA1, 'o', 'd', 'z'}) {
		t.Errorf("EncodeString mismatch")
	}
}
