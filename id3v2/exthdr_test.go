package id3v2

import "testing"

func TestParseExtHeaderUnderstoodFlags(t *testing.T) {
	// size=11 (5-byte prefix + 1 flags byte + 5-byte CRC), flagBytes=1,
	// flags=0x60 (update + CRC present, no restrictions).
	data := append(encodeSyncSafe(11, 4), 1, 0x60)
	data = append(data, encodeSyncSafe(12345, 5)...)

	eh, consumed, err := parseExtHeader(data)
	if err != nil {
		t.Fatalf("parseExtHeader: %v", err)
	}
	if consumed != 11 {
		t.Fatalf("consumed: got %d, want 11", consumed)
	}
	if !eh.Update {
		t.Fatal("expected Update to be true")
	}
	if !eh.HasCRC || eh.CRC != 12345 {
		t.Fatalf("CRC: got (%v, %d), want (true, 12345)", eh.HasCRC, eh.CRC)
	}
	if eh.HasRestrictions {
		t.Fatal("expected HasRestrictions to be false")
	}
}

func TestParseExtHeaderUnrecognizedFlagCountPreservesRaw(t *testing.T) {
	// flagBytes != 1: the whole region is preserved verbatim, nothing
	// parsed out of it.
	data := append(encodeSyncSafe(8, 4), 3, 0xFF, 0xFF, 0xFF)

	eh, consumed, err := parseExtHeader(data)
	if err != nil {
		t.Fatalf("parseExtHeader: %v", err)
	}
	if consumed != 8 {
		t.Fatalf("consumed: got %d, want 8", consumed)
	}
	if eh.Update || eh.HasCRC || eh.HasRestrictions {
		t.Fatalf("expected no sub-fields parsed for an unrecognized flag count, got %+v", eh)
	}
	if len(eh.Raw) != 8 {
		t.Fatalf("Raw length: got %d, want 8", len(eh.Raw))
	}
}

func TestParseExtHeaderRejectsShortInput(t *testing.T) {
	if _, _, err := parseExtHeader([]byte{0, 0}); err == nil {
		t.Fatal("expected an error for input shorter than the 5-byte prefix")
	}
}
