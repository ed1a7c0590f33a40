package id3v2

// Version is the major revision of the ID3v2 specification a Tag follows.
type Version byte

const (
	// Version22 is v2.2.x of the ID3v2 specification. Frame ids are
	// three characters wide and frame headers are 6 bytes.
	Version22 Version = 2
	// Version23 is v2.3.x of the ID3v2 specification.
	Version23 Version = 3
	// Version24 is v2.4.x of the ID3v2 specification.
	Version24 Version = 4
)

// versionFromMajorByte decodes the major-version byte stored at offset 3
// of the tag header into a Version, per spec.md §4.5:
// version == 2 + (major_byte)/10. Only byte values 2, 3, and 4 are
// accepted; the revision byte at offset 4 is ignored.
func versionFromMajorByte(b byte) (Version, bool) {
	switch b {
	case 2, 3, 4:
		return Version(b), true
	default:
		return 0, false
	}
}

func (v Version) valid() bool {
	switch v {
	case Version22, Version23, Version24:
		return true
	default:
		return false
	}
}

// frameIDWidth returns the number of characters a frame identifier
// occupies under v: 3 for v2.2, 4 for v2.3/v2.4.
func (v Version) frameIDWidth() int {
	if v == Version22 {
		return 3
	}
	return 4
}

// frameHeaderSize returns the on-disk size of a frame header under v:
// 6 bytes for v2.2, 10 bytes for v2.3/v2.4.
func (v Version) frameHeaderSize() int {
	if v == Version22 {
		return 6
	}
	return 10
}

func (v Version) String() string {
	switch v {
	case Version22:
		return "2.2"
	case Version23:
		return "2.3"
	case Version24:
		return "2.4"
	default:
		return "unknown"
	}
}
