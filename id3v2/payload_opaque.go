package id3v2

// OpaqueFrame is the payload of every supported-but-not-decoded frame id
// (UFID, PRIV, POPM, equalisation, relative-volume-adjustment, etc). The
// raw bytes are preserved verbatim (spec.md §4.3 "opaque-binary").
type OpaqueFrame struct {
	Data []byte
}

func (f *OpaqueFrame) decode(_ Version, raw []byte) error {
	f.Data = append([]byte(nil), raw...)
	return nil
}

func (f *OpaqueFrame) encode(_ Version) ([]byte, error) {
	return append([]byte(nil), f.Data...), nil
}
