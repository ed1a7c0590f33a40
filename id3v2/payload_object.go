package id3v2

import "fmt"

// ObjectFrame is the payload of GEOB (v2.3/v2.4) and GEO (v2.2) frames
// (spec.md §4.3 "encapsulated-object").
type ObjectFrame struct {
	Encoding    Encoding
	MIMEType    string
	Filename    string
	Description string
	Data        []byte
}

func (f *ObjectFrame) decode(version Version, raw []byte) error {
	if len(raw) < 1 {
		return fmt.Errorf("id3v2: object frame payload too short")
	}

	enc := Encoding(raw[0])
	if !enc.valid(version) {
		return fmt.Errorf("id3v2: object frame uses encoding %d, unsupported under v%s", enc, version)
	}
	f.Encoding = enc
	body := raw[1:]

	mime, consumed, err := decodeString(EncodingLatin1, body)
	if err != nil {
		return fmt.Errorf("id3v2: object mime type: %w", err)
	}
	f.MIMEType = mime
	body = body[consumed:]

	filename, consumed, err := decodeString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: object filename: %w", err)
	}
	f.Filename = filename
	body = body[consumed:]

	desc, consumed, err := decodeString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: object description: %w", err)
	}
	f.Description = desc
	body = body[consumed:]

	f.Data = append([]byte(nil), body...)
	return nil
}

func (f *ObjectFrame) encode(_ Version) ([]byte, error) {
	out := []byte{byte(f.Encoding)}

	mime, err := encodeString(EncodingLatin1, f.MIMEType)
	if err != nil {
		return nil, err
	}
	out = append(out, mime...)

	filename, err := encodeString(f.Encoding, f.Filename)
	if err != nil {
		return nil, err
	}
	out = append(out, filename...)

	desc, err := encodeString(f.Encoding, f.Description)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)

	return append(out, f.Data...), nil
}
