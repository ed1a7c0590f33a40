package id3v2

// yearFrameID picks TYE, TYER, or TDRC depending on the tag's version
// (spec.md §9: v2.4 collapses the old date/time frames into timestamp
// frames; v2.2 uses the 3-character frame-id width).
func (t *Tag) yearFrameID() string {
	switch t.version {
	case Version22:
		return yearFrameIDv2
	case Version24:
		return yearFrameIDv4
	default:
		return yearFrameIDv3
	}
}

func (t *Tag) textFrameValue(fid string) string {
	f := t.FirstFrame(fid)
	if f == nil {
		return ""
	}
	tf, ok := f.Payload.(*TextFrame)
	if !ok || len(tf.Texts) == 0 {
		return ""
	}
	return tf.Texts[0]
}

func (t *Tag) setTextFrameValue(fid, value string) {
	t.RemoveFramesWithID(fid)
	t.frames = append(t.frames, &Frame{
		FID:     fid,
		Payload: &TextFrame{Encoding: EncodingUTF8.clampTo(t.version), Texts: []string{value}},
		version: t.version,
	})
}

// clampTo downgrades enc to EncodingLatin1 under versions that don't
// support UTF-8 (spec.md §4.1: UTF-8 is v2.4 only).
func (enc Encoding) clampTo(v Version) Encoding {
	if enc.valid(v) {
		return enc
	}
	return EncodingLatin1
}

// Title returns the TIT2 text frame's first value, or "" if absent.
func (t *Tag) Title() string { return t.textFrameValue(titleFrameID) }

// SetTitle replaces the tag's TIT2 frame with a single text value.
func (t *Tag) SetTitle(title string) { t.setTextFrameValue(titleFrameID, title) }

// Artist returns the TPE1 text frame's first value, or "" if absent.
func (t *Tag) Artist() string { return t.textFrameValue(artistFrameID) }

// SetArtist replaces the tag's TPE1 frame with a single text value.
func (t *Tag) SetArtist(artist string) { t.setTextFrameValue(artistFrameID, artist) }

// Album returns the TALB text frame's first value, or "" if absent.
func (t *Tag) Album() string { return t.textFrameValue(albumFrameID) }

// SetAlbum replaces the tag's TALB frame with a single text value.
func (t *Tag) SetAlbum(album string) { t.setTextFrameValue(albumFrameID, album) }

// Genre returns the TCON text frame's first value, or "" if absent.
func (t *Tag) Genre() string { return t.textFrameValue(genreFrameID) }

// SetGenre replaces the tag's TCON frame with a single text value.
func (t *Tag) SetGenre(genre string) { t.setTextFrameValue(genreFrameID, genre) }

// Year returns the tag's year/recording-time text frame's first value,
// reading TYE under v2.2, TYER under v2.3, and TDRC under v2.4.
func (t *Tag) Year() string { return t.textFrameValue(t.yearFrameID()) }

// SetYear replaces the tag's year/recording-time frame with a single text
// value, writing to whichever frame id matches the tag's version.
func (t *Tag) SetYear(year string) { t.setTextFrameValue(t.yearFrameID(), year) }

// AllPictures returns every attached-picture frame in the tag (APIC under
// v2.3/v2.4, PIC under v2.2), in frame order (spec.md §8.1).
func (t *Tag) AllPictures() []*PictureFrame {
	var out []*PictureFrame
	for _, f := range t.frames {
		if !isSequencedFrameID(f.FID) {
			continue
		}
		if pf, ok := f.Payload.(*PictureFrame); ok {
			out = append(out, pf)
		}
	}
	return out
}

// AllComments returns every comment/lyrics frame in the tag (COMM/USLT
// under v2.3/v2.4, COM/ULT under v2.2), in frame order (spec.md §8.1).
func (t *Tag) AllComments() []*CommentFrame {
	var out []*CommentFrame
	for _, f := range t.frames {
		if !isSequencedFrameID(f.FID) {
			continue
		}
		if cf, ok := f.Payload.(*CommentFrame); ok {
			out = append(out, cf)
		}
	}
	return out
}

// AllUserTextFrames returns every user-defined text frame in the tag
// (TXXX under v2.3/v2.4, TXX under v2.2), in frame order (spec.md §8.1).
func (t *Tag) AllUserTextFrames() []*UserTextFrame {
	var out []*UserTextFrame
	for _, f := range t.frames {
		if !isSequencedFrameID(f.FID) {
			continue
		}
		if uf, ok := f.Payload.(*UserTextFrame); ok && !uf.isURL {
			out = append(out, uf)
		}
	}
	return out
}
