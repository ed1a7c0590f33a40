package id3v2

// URLFrame is the payload of every W*** frame except WXXX (spec.md §4.3
// "url"): raw Latin-1 bytes, no encoding byte, no terminator.
type URLFrame struct {
	URL string
}

func (f *URLFrame) decode(_ Version, raw []byte) error {
	f.URL = string(raw)
	return nil
}

func (f *URLFrame) encode(_ Version) ([]byte, error) {
	return []byte(f.URL), nil
}
