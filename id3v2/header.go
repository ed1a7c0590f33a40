package id3v2

import "fmt"

const tagHeaderSize = 10

// tagHeader is the fixed 10-byte region at the start of every ID3v2 tag
// (spec.md §6).
type tagHeader struct {
	Version Version
	Flags   TagFlags
	Size    uint32
}

func parseTagHeader(data []byte) (tagHeader, error) {
	if len(data) < tagHeaderSize {
		return tagHeader{}, newErr("parseTagHeader", KindHeaderInvalid, errHeaderShort)
	}

	if string(data[:3]) != "ID3" {
		return tagHeader{}, newErr("parseTagHeader", KindHeaderInvalid, errHeaderMagic)
	}

	version, ok := versionFromMajorByte(data[3])
	if !ok {
		return tagHeader{}, newErr("parseTagHeader", KindNotImplemented,
			fmt.Errorf("major version byte %d is not 2, 3, or 4", data[3]))
	}

	flags := decodeTagFlags(version, data[5])

	size, ok := decodeSyncSafe(data[6:10])
	if !ok {
		return tagHeader{}, newErr("parseTagHeader", KindHeaderInvalid,
			fmt.Errorf("tag size field is not sync-safe"))
	}

	return tagHeader{Version: version, Flags: flags, Size: size}, nil
}

func (h tagHeader) serialize() []byte {
	out := make([]byte, tagHeaderSize)
	copy(out, "ID3")
	out[3] = byte(h.Version)
	out[4] = 0 // revision, always written as 0
	out[5] = h.Flags.encode(h.Version)
	copy(out[6:10], encodeSyncSafe(h.Size, 4))
	return out
}
