package id3v2

import "testing"

func TestTagFlagsRoundTripV23(t *testing.T) {
	f := TagFlags{Unsync: true, Ext: true, Exp: false, Footer: true}
	b := f.encode(Version23)
	got := decodeTagFlags(Version23, b)
	if got != f {
		t.Fatalf("round trip: got %+v, want %+v", got, f)
	}
}

func TestTagFlagsRoundTripV22(t *testing.T) {
	f := TagFlags{Unsync: true, Compression: true}
	b := f.encode(Version22)
	got := decodeTagFlags(Version22, b)
	if got.Unsync != f.Unsync || got.Compression != f.Compression {
		t.Fatalf("round trip: got %+v, want %+v", got, f)
	}
	// v2.2 has no ext/exp/footer bits.
	if got.Ext || got.Exp || got.Footer {
		t.Fatalf("v2.2 flags should not decode ext/exp/footer, got %+v", got)
	}
}
