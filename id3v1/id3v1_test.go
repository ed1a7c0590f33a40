package id3v1

import (
	"bytes"
	"testing"
)

func fixedField(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

func buildTrailer(songname, artist, album, year, comment string, track int, genre byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("TAG")
	buf.Write(fixedField(songname, fieldSongname))
	buf.Write(fixedField(artist, fieldArtist))
	buf.Write(fixedField(album, fieldAlbum))
	buf.Write(fixedField(year, fieldYear))

	c := make([]byte, fieldComment)
	copy(c, comment)
	if track >= 0 {
		c[28] = 0x00
		c[29] = byte(track)
	}
	buf.Write(c)
	buf.WriteByte(genre)
	return buf.Bytes()
}

func TestParseBytesWithTrackNumber(t *testing.T) {
	// spec.md §8 scenario 5: comment[28] == 0x00, comment[29] == 7.
	raw := buildTrailer("Song", "Artist", "Album", "1999", "a comment", 7, 17)

	tag, err := parseBytes(raw)
	if err != nil {
		t.Fatalf("parseBytes: %v", err)
	}
	if tag.Track != 7 {
		t.Fatalf("Track: got %d, want 7", tag.Track)
	}
	if len(tag.Comment) > 28 {
		t.Fatalf("Comment too long for a track-bearing trailer: %q", tag.Comment)
	}
	if tag.Songname != "Song" || tag.Artist != "Artist" || tag.Album != "Album" || tag.Year != "1999" {
		t.Fatalf("unexpected fields: %+v", tag)
	}
	if tag.Genre != 17 {
		t.Fatalf("Genre: got %d, want 17", tag.Genre)
	}
}

func TestParseBytesWithoutTrackNumber(t *testing.T) {
	raw := buildTrailer("Song", "Artist", "Album", "1999", "a longer comment without a nul tail", -1, 0)

	tag, err := parseBytes(raw)
	if err != nil {
		t.Fatalf("parseBytes: %v", err)
	}
	if tag.Track != -1 {
		t.Fatalf("Track: got %d, want -1", tag.Track)
	}
}

func TestParseBytesMissingMagic(t *testing.T) {
	raw := buildTrailer("x", "x", "x", "x", "x", -1, 0)
	raw[0] = 'X'

	if _, err := parseBytes(raw); err != ErrNoTag {
		t.Fatalf("parseBytes: got %v, want ErrNoTag", err)
	}
}

func TestParseBytesWrongLength(t *testing.T) {
	if _, err := parseBytes(make([]byte, 64)); err == nil {
		t.Fatal("expected an error for a short trailer")
	}
}

func TestUnpadStripsNulAndWhitespace(t *testing.T) {
	got := unpad([]byte("Title \x00\x00garbage"))
	if got != "Title" {
		t.Fatalf("unpad: got %q, want %q", got, "Title")
	}
}
