package id3v2

import "fmt"

// PictureFrame is the payload of APIC (v2.3/v2.4) and PIC (v2.2) frames
// (spec.md §4.3 "picture" / "picture v2.2"). Under v2.2 MIMEType instead
// carries the 3-byte, non-null-terminated image-format field ("PNG",
// "JPG"); the two shapes are unified here since every other field is
// identical.
type PictureFrame struct {
	Encoding    Encoding
	MIMEType    string
	PictureType byte
	Description string
	Data        []byte
}

func (f *PictureFrame) decode(version Version, raw []byte) error {
	if len(raw) < 1 {
		return fmt.Errorf("id3v2: picture frame payload too short")
	}

	enc := Encoding(raw[0])
	if !enc.valid(version) {
		return fmt.Errorf("id3v2: picture frame uses encoding %d, unsupported under v%s", enc, version)
	}
	f.Encoding = enc
	body := raw[1:]

	if version == Version22 {
		if len(body) < 3 {
			return fmt.Errorf("id3v2: PIC frame missing image-format field")
		}
		f.MIMEType = string(body[:3])
		body = body[3:]
	} else {
		mime, consumed, err := decodeString(EncodingLatin1, body)
		if err != nil {
			return fmt.Errorf("id3v2: picture mime type: %w", err)
		}
		f.MIMEType = mime
		body = body[consumed:]
	}

	if len(body) < 1 {
		return fmt.Errorf("id3v2: picture frame missing picture-type byte")
	}
	f.PictureType = body[0]
	body = body[1:]

	desc, consumed, err := decodeString(enc, body)
	if err != nil {
		return fmt.Errorf("id3v2: picture description: %w", err)
	}
	f.Description = desc
	body = body[consumed:]

	f.Data = append([]byte(nil), body...)
	return nil
}

func (f *PictureFrame) encode(version Version) ([]byte, error) {
	out := []byte{byte(f.Encoding)}

	if version == Version22 {
		if len(f.MIMEType) != 3 {
			return nil, fmt.Errorf("id3v2: PIC image-format must be 3 characters, got %q", f.MIMEType)
		}
		out = append(out, f.MIMEType...)
	} else {
		mime, err := encodeString(EncodingLatin1, f.MIMEType)
		if err != nil {
			return nil, err
		}
		out = append(out, mime...)
	}

	out = append(out, f.PictureType)

	desc, err := encodeString(f.Encoding, f.Description)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)

	return append(out, f.Data...), nil
}
