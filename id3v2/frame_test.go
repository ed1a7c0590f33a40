package id3v2

import "testing"

func TestNewFrameRejectsUnknownID(t *testing.T) {
	if _, err := newFrame(Version23, "ZZZZ"); err == nil {
		t.Fatal("expected an error for an unknown frame id")
	}
}

func TestNewFrameRejectsWrongWidthID(t *testing.T) {
	if _, err := newFrame(Version23, "TIT"); err == nil {
		t.Fatal("expected an error for a 3-char id under v2.3")
	}
}

func TestFrameSerializeRoundTripV23(t *testing.T) {
	f := &Frame{
		FID:     "TIT2",
		Flags:   FrameFlags{},
		Payload: &TextFrame{Encoding: EncodingLatin1, Texts: []string{"Title"}},
		version: Version23,
	}

	raw, err := f.serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got, consumed, err := parseFrameFromBytes(Version23, raw, nopLogger{})
	if err != nil {
		t.Fatalf("parseFrameFromBytes: %v", err)
	}
	if consumed != len(raw) {
		t.Fatalf("consumed: got %d, want %d", consumed, len(raw))
	}
	if got.FID != "TIT2" {
		t.Fatalf("FID: got %q", got.FID)
	}
	tf, ok := got.Payload.(*TextFrame)
	if !ok || len(tf.Texts) != 1 || tf.Texts[0] != "Title" {
		t.Fatalf("payload: got %+v", got.Payload)
	}
}

func TestFrameSerializeRoundTripV22(t *testing.T) {
	f := &Frame{
		FID:     "TT2",
		Payload: &TextFrame{Encoding: EncodingLatin1, Texts: []string{"Title"}},
		version: Version22,
	}

	raw, err := f.serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	// A single text segment carries no trailing terminator: 1 encoding
	// byte + 5 bytes of "Title", plus the 6-byte v2.2 frame header.
	if len(raw) != 6+len("\x00Title") {
		t.Fatalf("unexpected v2.2 frame length: %d", len(raw))
	}

	got, consumed, err := parseFrameFromBytes(Version22, raw, nopLogger{})
	if err != nil {
		t.Fatalf("parseFrameFromBytes: %v", err)
	}
	if consumed != len(raw) {
		t.Fatalf("consumed: got %d, want %d", consumed, len(raw))
	}
	if got.FID != "TT2" {
		t.Fatalf("FID: got %q", got.FID)
	}
}

func TestParseFrameFromBytesDropsUnknownID(t *testing.T) {
	// 10-byte v2.3 header for an id not in v23Table, zero-length payload.
	raw := append([]byte("ZYXW"), 0, 0, 0, 0, 0, 0)

	frame, consumed, err := parseFrameFromBytes(Version23, raw, nopLogger{})
	if err != nil {
		t.Fatalf("parseFrameFromBytes: %v", err)
	}
	if frame != nil {
		t.Fatalf("expected a dropped (nil) frame, got %+v", frame)
	}
	if consumed != len(raw) {
		t.Fatalf("consumed: got %d, want %d", consumed, len(raw))
	}
}

func TestFrameFlagsReproducePrecedenceBug(t *testing.T) {
	// status byte with only the "real" TagAlterPreserve bit (0x80) set.
	// The buggy formula status & (0x80>>7) collapses to status & 1, so a
	// status byte of 0x80 (binary 10000000) should NOT report
	// TagAlterPreserve true, since bit 0 is clear.
	flags := decodeFrameFlags(0x80, 0)
	if flags.TagAlterPreserve {
		t.Fatal("decodeFrameFlags should reproduce the bit-shift bug, not read bit 7 correctly")
	}

	flags = decodeFrameFlags(0x01, 0)
	if !flags.TagAlterPreserve || !flags.FileAlterPreserve || !flags.ReadOnly {
		t.Fatal("status byte bit 0 should appear set on all three status flags under the reproduced bug")
	}

	statusByte, _ := encodeFrameFlags(FrameFlags{TagAlterPreserve: true})
	if statusByte != 0x01 {
		t.Fatalf("encodeFrameFlags: got %#x, want 0x01", statusByte)
	}
}

func TestFrameSerializePreservesRawFlagBytes(t *testing.T) {
	// status 0x40 (file-alter-preserve) decodes to an all-false FrameFlags
	// under the reproduced bug, but a parse->serialize round trip must
	// still emit the original 0x40/0x20 bytes rather than 0x00/0x00.
	raw := append([]byte("TIT2"), 0, 0, 0, 3, 0x40, 0x20)
	raw = append(raw, 0, 'H', 'i')

	frame, consumed, err := parseFrameFromBytes(Version23, raw, nopLogger{})
	if err != nil {
		t.Fatalf("parseFrameFromBytes: %v", err)
	}
	if consumed != len(raw) {
		t.Fatalf("consumed: got %d, want %d", consumed, len(raw))
	}
	if frame.Flags.FileAlterPreserve {
		t.Fatal("decoded FrameFlags should still reflect the bit-0-only bug")
	}

	out, err := frame.serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out[8] != 0x40 || out[9] != 0x20 {
		t.Fatalf("status/format bytes not preserved verbatim: got %#x %#x", out[8], out[9])
	}

	// A frame built fresh (no raw bytes to preserve) still serializes
	// through the buggy encodeFrameFlags path.
	fresh := &Frame{
		FID:     "TIT2",
		Flags:   FrameFlags{FileAlterPreserve: true},
		Payload: &TextFrame{Encoding: EncodingLatin1, Texts: []string{"Hi"}},
		version: Version23,
	}
	out, err = fresh.serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out[8] != 0x01 {
		t.Fatalf("fresh frame status byte: got %#x, want 0x01 (bug collapses bit 6 to bit 0)", out[8])
	}

	fresh.SetFlags(FrameFlags{TagAlterPreserve: true})
	out, err = fresh.serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out[8] != 0x01 {
		t.Fatalf("fresh frame status byte after SetFlags: got %#x, want 0x01", out[8])
	}
}
