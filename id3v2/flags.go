package id3v2

// TagFlags are the header-level flags of spec.md §3/§6. Compression is
// only meaningful under Version22; Ext, Exp, and Footer are only
// meaningful under Version23/Version24.
type TagFlags struct {
	Unsync      bool
	Ext         bool
	Exp         bool
	Footer      bool
	Compression bool
}

func decodeTagFlags(version Version, b byte) TagFlags {
	if version == Version22 {
		return TagFlags{
			Unsync:      b&0x80 != 0,
			Compression: b&0x40 != 0,
		}
	}
	return TagFlags{
		Unsync: b&0x80 != 0,
		Ext:    b&0x40 != 0,
		Exp:    b&0x20 != 0,
		Footer: b&0x10 != 0,
	}
}

func (f TagFlags) encode(version Version) byte {
	var b byte
	if f.Unsync {
		b |= 0x80
	}
	if version == Version22 {
		if f.Compression {
			b |= 0x40
		}
		return b
	}
	if f.Ext {
		b |= 0x40
	}
	if f.Exp {
		b |= 0x20
	}
	if f.Footer {
		b |= 0x10
	}
	return b
}

// FrameFlags are the v2.3/v2.4 frame-level flags of spec.md §3. They do
// not exist under v2.2, which has no per-frame flag bytes.
type FrameFlags struct {
	TagAlterPreserve    bool
	FileAlterPreserve   bool
	ReadOnly            bool
	Grouping            bool
	Compression         bool
	Encryption          bool
	Unsync              bool
	DataLengthIndicator bool
}

// decodeFrameFlags reproduces the source's operator-precedence bug in
// its frame-flag unpacking: expressions of the form
// `status & 0x40 >> 6` bind as `status & (0x40 >> 6)`, i.e.
// `status & 1`, rather than the presumably-intended
// `(status & 0x40) >> 6`. spec.md §9 leaves reproducing this quirk as an
// open question; this package reproduces it on both decode and encode
// (see encodeFrameFlags and DESIGN.md) so a frame built fresh (rather
// than parsed) still emits the same buggy bit-0-only flag bytes.
//
// The FrameFlags a Frame exposes after a parse are therefore only ever a
// same-bug reading of bit 0 of the real status/format byte, not the
// verbatim bits 5-7 a real tag-alter-preserve/file-alter-preserve/
// read-only/etc. byte carries. Frame.serialize does not reconstruct the
// status/format bytes from these booleans for a parsed frame: it keeps
// the raw bytes it read (Frame.rawFlagBytes) and re-emits them verbatim,
// so a commit never clears flag bits this package can't represent as
// booleans. encodeFrameFlags below is only reached for frames built by
// the caller (AddFrame, SetFlags), which have no raw bytes to preserve.
func decodeFrameFlags(statusByte, formatByte byte) FrameFlags {
	return FrameFlags{
		TagAlterPreserve:  statusByte&(0x80>>7) != 0,
		FileAlterPreserve: statusByte&(0x40>>6) != 0,
		ReadOnly:          statusByte&(0x20>>5) != 0,

		Grouping:            formatByte&(0x40>>6) != 0,
		Compression:         formatByte&(0x08>>3) != 0,
		Encryption:          formatByte&(0x04>>2) != 0,
		Unsync:              formatByte&(0x02>>1) != 0,
		DataLengthIndicator: formatByte&(0x01>>0) != 0,
	}
}

func encodeFrameFlags(f FrameFlags) (statusByte, formatByte byte) {
	if f.TagAlterPreserve {
		statusByte |= 0x80 >> 7
	}
	if f.FileAlterPreserve {
		statusByte |= 0x40 >> 6
	}
	if f.ReadOnly {
		statusByte |= 0x20 >> 5
	}

	if f.Grouping {
		formatByte |= 0x40 >> 6
	}
	if f.Compression {
		formatByte |= 0x08 >> 3
	}
	if f.Encryption {
		formatByte |= 0x04 >> 2
	}
	if f.Unsync {
		formatByte |= 0x02 >> 1
	}
	if f.DataLengthIndicator {
		formatByte |= 0x01 >> 0
	}
	return statusByte, formatByte
}
