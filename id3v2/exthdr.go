package id3v2

// extHeader is the optional extension header (spec.md §3/§4.5). Its
// construction is a stub in the source this package is modeled on
// (tagger/id3v2.py's construct_ext_header always returns ''); this
// package preserves whatever bytes were read verbatim on Raw, and
// commit always clears TagFlags.Ext and writes a zero-length extension
// header (spec.md §4.6 step 1, §9 open question 3).
type extHeader struct {
	Update       bool
	CRC          uint32
	HasCRC       bool
	Restrictions byte
	HasRestrictions bool
	Raw          []byte
}

// extHeaderLength is the fixed prefix of every extension header: a
// 4-byte sync-safe size and a 1-byte flag count, matching pytagger's
// ID3V2_FILE_EXTHEADER_LENGTH.
const extHeaderLength = 5

// parseExtHeader reads the extension header starting at data[0], per
// tagger/id3v2.py's parse_ext_header: a 4-byte sync-safe size (counting
// itself and the flag-count byte), a 1-byte flag count (only 1 is
// understood; anything else is an unrecognized extension header
// preserved verbatim), then up to two optional sub-fields (5-byte CRC,
// 1-byte restrictions) gated by bits in a single flag byte. The size
// field is always read sync-safe here, regardless of version -- the
// source this package is modeled on does not special-case v2.3 the way
// it does for frame sizes (spec.md §9 open question 2 is scoped to
// frame sizes only). It returns the number of bytes consumed.
func parseExtHeader(data []byte) (extHeader, int, error) {
	if len(data) < extHeaderLength {
		return extHeader{}, 0, newErr("parseExtHeader", KindHeaderInvalid, errHeaderShort)
	}

	size, ok := decodeSyncSafe(data[:4])
	if !ok {
		return extHeader{}, 0, newErr("parseExtHeader", KindHeaderInvalid, errBadFrameSize)
	}
	if int(size) < extHeaderLength || len(data) < int(size) {
		return extHeader{}, 0, newErr("parseExtHeader", KindHeaderInvalid, errHeaderShort)
	}

	flagBytes := data[4]
	read := extHeaderLength
	eh := extHeader{Raw: append([]byte(nil), data[:size]...)}

	if flagBytes == 1 && read < len(data) {
		flags := data[read]
		read++
		eh.Update = flags&0x40 != 0

		if flags&0x20 != 0 && read+5 <= len(data) {
			crc, ok := decodeSyncSafe(data[read : read+5])
			if ok {
				eh.CRC, eh.HasCRC = crc, true
			}
			read += 5
		}
		if flags&0x10 != 0 && read+1 <= len(data) {
			eh.Restrictions = data[read]
			eh.HasRestrictions = true
			read++
		}
	}

	return eh, int(size), nil
}
