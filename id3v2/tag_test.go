package id3v2

import (
	"bytes"
	"os"
	"testing"
)

// buildV24Frame returns a raw v2.4 frame: 4-char id + 4-byte plain-big-
// endian size + 2 flag bytes + payload.
func buildV24Frame(fid string, payload []byte) []byte {
	out := append([]byte(fid), encodeSizePlain(uint32(len(payload)))...)
	out = append(out, 0, 0)
	return append(out, payload...)
}

func buildV24TagFile(t *testing.T, frames []byte, padding int, audio []byte) string {
	t.Helper()

	size := uint32(len(frames) + padding)
	header := tagHeader{Version: Version24, Size: size}

	var buf bytes.Buffer
	buf.Write(header.serialize())
	buf.Write(frames)
	buf.Write(make([]byte, padding))
	buf.Write(audio)

	f, err := os.CreateTemp(t.TempDir(), "tag-*.mp3")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f.Close()
	return f.Name()
}

func TestOpenParsesMinimalV24TextTag(t *testing.T) {
	// spec.md §8 scenario 1: one TIT2 frame, encoding 3 (UTF-8), text
	// "Hello", no terminator on the lone string. tag.size == 16.
	payload := append([]byte{byte(EncodingUTF8)}, "Hello"...)
	frame := buildV24Frame("TIT2", payload)

	path := buildV24TagFile(t, frame, 0, []byte("audio-body"))

	tag, err := Open(path, ModeRead, Version24)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tag.Close()

	if tag.Size() != 16 {
		t.Fatalf("Size: got %d, want 16", tag.Size())
	}
	frames := tag.Frames()
	if len(frames) != 1 || frames[0].FID != "TIT2" {
		t.Fatalf("Frames: got %+v", frames)
	}
	tf, ok := frames[0].Payload.(*TextFrame)
	if !ok || len(tf.Texts) != 1 || tf.Texts[0] != "Hello" {
		t.Fatalf("payload: got %+v", frames[0].Payload)
	}
}

func TestOpenToleratesUnsupportedFrame(t *testing.T) {
	unknown := buildV24Frame("ZZZZ", []byte{1, 2, 3})
	known := buildV24Frame("TIT2", append([]byte{byte(EncodingLatin1)}, "Hi"...))

	path := buildV24TagFile(t, append(unknown, known...), 0, nil)

	tag, err := Open(path, ModeRead, Version24)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tag.Close()

	frames := tag.Frames()
	if len(frames) != 1 || frames[0].FID != "TIT2" {
		t.Fatalf("expected the unknown frame to be dropped, got %+v", frames)
	}
}

func TestCommitFastPathKeepsFileLength(t *testing.T) {
	// spec.md §8 scenario 4: remove a frame, fast path keeps size and
	// file length, growing the padding instead.
	frame1 := buildV24Frame("TIT2", append([]byte{byte(EncodingLatin1)}, bytes.Repeat([]byte{'A'}, 60)...))
	frame2 := buildV24Frame("TPE1", append([]byte{byte(EncodingLatin1)}, bytes.Repeat([]byte{'B'}, 10)...))
	frames := append(append([]byte{}, frame1...), frame2...)

	audio := []byte("REST-OF-FILE-AUDIO-BODY")
	path := buildV24TagFile(t, frames, 0, audio)

	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}

	tag, err := Open(path, ModeModify, Version24)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tag.Close()

	originalSize := tag.Size()
	tag.RemoveFramesWithID("TPE1")

	if err := tag.Commit(false); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if before.Size() != after.Size() {
		t.Fatalf("file length changed: before=%d after=%d", before.Size(), after.Size())
	}
	if tag.Size() != originalSize {
		t.Fatalf("tag size changed: got %d, want %d", tag.Size(), originalSize)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasSuffix(body, audio) {
		t.Fatal("audio body was not preserved byte-for-byte")
	}
}

func TestCommitSlowPathGrowsAndPreservesAudio(t *testing.T) {
	// spec.md §8 scenario 3: appending a frame that no longer fits
	// forces the slow path; audio body beyond the old tag region must
	// survive bit-exactly.
	frame := buildV24Frame("TIT2", append([]byte{byte(EncodingLatin1)}, bytes.Repeat([]byte{'A'}, 70)...))
	audio := bytes.Repeat([]byte{0xAB}, 4096)

	path := buildV24TagFile(t, frame, 10, audio)

	tag, err := Open(path, ModeModify, Version24)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tag.Close()

	big := bytes.Repeat([]byte{'Z'}, 4000)
	if err := tag.AddFrame("TPE1", &TextFrame{Encoding: EncodingLatin1, Texts: []string{string(big)}}); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}

	if err := tag.Commit(false); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if tag.Padding() != DefaultPadding {
		t.Fatalf("Padding: got %d, want %d", tag.Padding(), DefaultPadding)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasSuffix(body, audio) {
		t.Fatal("audio body was not preserved byte-for-byte after the slow path")
	}

	reopened, err := Open(path, ModeRead, Version24)
	if err != nil {
		t.Fatalf("re-Open after commit: %v", err)
	}
	defer reopened.Close()

	var fids []string
	for _, f := range reopened.Frames() {
		fids = append(fids, f.FID)
	}
	if len(fids) != 2 || fids[0] != "TIT2" || fids[1] != "TPE1" {
		t.Fatalf("frame order not preserved: got %v", fids)
	}
}

func TestSugarAccessors(t *testing.T) {
	tag, err := NewTag(Version23)
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	tag.SetTitle("Song")
	tag.SetArtist("Band")
	tag.SetAlbum("Record")
	tag.SetYear("1999")
	tag.SetGenre("Rock")

	if tag.Title() != "Song" || tag.Artist() != "Band" || tag.Album() != "Record" ||
		tag.Year() != "1999" || tag.Genre() != "Rock" {
		t.Fatalf("sugar accessors: title=%q artist=%q album=%q year=%q genre=%q",
			tag.Title(), tag.Artist(), tag.Album(), tag.Year(), tag.Genre())
	}
}

func TestSetYearUsesVersionAppropriateFrameID(t *testing.T) {
	tag, err := NewTag(Version22)
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}
	tag.SetYear("1999")

	f := tag.FirstFrame("TYE")
	if f == nil {
		t.Fatal("expected a 3-character TYE frame under v2.2")
	}
	if len(f.FID) != 3 {
		t.Fatalf("frame id width: got %d, want 3", len(f.FID))
	}
	if tag.Year() != "1999" {
		t.Fatalf("Year: got %q, want 1999", tag.Year())
	}
}

func TestSequenceAccessors(t *testing.T) {
	tag, err := NewTag(Version23)
	if err != nil {
		t.Fatalf("NewTag: %v", err)
	}

	if err := tag.AddFrame("APIC", &PictureFrame{Encoding: EncodingLatin1, MIMEType: "image/png", Data: []byte("a")}); err != nil {
		t.Fatalf("AddFrame APIC: %v", err)
	}
	if err := tag.AddFrame("APIC", &PictureFrame{Encoding: EncodingLatin1, MIMEType: "image/jpeg", Data: []byte("b")}); err != nil {
		t.Fatalf("AddFrame APIC: %v", err)
	}
	if err := tag.AddFrame("COMM", &CommentFrame{Encoding: EncodingLatin1, Language: "eng", Text: "nice"}); err != nil {
		t.Fatalf("AddFrame COMM: %v", err)
	}
	if err := tag.AddFrame("TXXX", &UserTextFrame{Encoding: EncodingLatin1, Description: "replaygain", Value: "1.0"}); err != nil {
		t.Fatalf("AddFrame TXXX: %v", err)
	}

	if pics := tag.AllPictures(); len(pics) != 2 {
		t.Fatalf("AllPictures: got %d, want 2", len(pics))
	}
	if comments := tag.AllComments(); len(comments) != 1 || comments[0].Text != "nice" {
		t.Fatalf("AllComments: got %+v", comments)
	}
	if userText := tag.AllUserTextFrames(); len(userText) != 1 || userText[0].Value != "1.0" {
		t.Fatalf("AllUserTextFrames: got %+v", userText)
	}
}

func TestCommonID(t *testing.T) {
	id, ok := CommonID(Version23, "Title")
	if !ok || id != "TIT2" {
		t.Fatalf("CommonID: got (%q, %v), want (TIT2, true)", id, ok)
	}
	if _, ok := CommonID(Version23, "not a real description"); ok {
		t.Fatal("expected an unknown description to report false")
	}
}
