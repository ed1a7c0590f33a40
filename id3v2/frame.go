package id3v2

import "fmt"

// Frame is a single decoded ID3v2 frame (spec.md §3/§4.4).
type Frame struct {
	FID     string
	RawSize uint32
	Flags   FrameFlags
	Payload Payload

	version Version

	// rawFlagBytes holds the status/format bytes exactly as read from a
	// parsed frame, so serialize can re-emit them verbatim (spec.md §3
	// "frame flags preserved verbatim") instead of rebuilding them from
	// Flags, which only ever reflects the buggy bit-0 decode of
	// decodeFrameFlags and would otherwise lose bits 5-7 of a real
	// status/format byte (e.g. 0x40 file-alter-preserve, 0x80
	// tag-alter-preserve) on every round trip.
	rawFlagBytes [2]byte
	hasRawFlags  bool
}

// SetFlags replaces the frame's flags and discards any raw flag bytes
// preserved from a parse, so the next serialize recomputes the
// status/format bytes from Flags (through the same bit-shift quirk as
// decodeFrameFlags, per encodeFrameFlags).
func (f *Frame) SetFlags(flags FrameFlags) {
	f.Flags = flags
	f.hasRawFlags = false
}

// newFrame constructs an empty frame for fid under version, with a
// default-initialized payload appropriate for fid. It fails with a
// KindParameter Error if fid is not supported under version.
func newFrame(version Version, fid string) (*Frame, error) {
	if len(fid) != version.frameIDWidth() {
		return nil, newErr("newFrame", KindParameter,
			fmt.Errorf("frame id %q is not %d characters wide for v%s", fid, version.frameIDWidth(), version))
	}

	kind, ok := lookupKind(version, fid)
	if !ok {
		return nil, newErr("newFrame", KindParameter,
			fmt.Errorf("frame id %q is not supported under v%s", fid, version))
	}

	return &Frame{
		FID:     fid,
		Payload: newPayload(kind),
		version: version,
	}, nil
}

// parseFrameFromBytes reads one frame header plus payload from data
// (which must contain at least the frame's declared span) and decodes
// it. It returns a nil frame and a nil error, with consumed set to the
// frame's full span, when fid is not in the dispatch table for version
// (the frame is dropped, not an error) or when decode fails (also
// dropped, logged through logger as a KindPayloadDecode warning). The one
// decode failure that keeps the frame is a UTF-8 encoding byte under
// v2.2/v2.3: the frame is kept with an OpaqueFrame payload holding its raw
// bytes, and a warning is logged.
func parseFrameFromBytes(version Version, data []byte, logger Logger) (frame *Frame, consumed int, err error) {
	headerSize := version.frameHeaderSize()
	if len(data) < headerSize {
		return nil, 0, newErr("parseFrameFromBytes", KindHeaderInvalid, errHeaderShort)
	}

	idWidth := version.frameIDWidth()
	fid := string(data[:idWidth])

	var rawSize uint32
	var flags FrameFlags
	var rawFlagBytes [2]byte
	var hasRawFlags bool

	if version == Version22 {
		rawSize = decodeSize24(data[3:6])
	} else {
		rawSize = decodeSizePlain(data[idWidth : idWidth+4])
		statusByte, formatByte := data[idWidth+4], data[idWidth+5]
		flags = decodeFrameFlags(statusByte, formatByte)
		rawFlagBytes = [2]byte{statusByte, formatByte}
		hasRawFlags = true
	}

	total := headerSize + int(rawSize)
	if len(data) < total {
		return nil, 0, newErr("parseFrameFromBytes", KindHeaderInvalid, errBadFrameSize)
	}

	payloadBytes := data[headerSize:total]

	kind, ok := lookupKind(version, fid)
	if !ok {
		logger.Warnf("id3v2: dropping unsupported frame %q", fid)
		return nil, total, nil
	}

	payload := newPayload(kind)
	if err := payload.decode(version, payloadBytes); err != nil {
		perr := newErr("parseFrameFromBytes", KindPayloadDecode, err)
		if kind != kindURL && kind != kindPlayCounter && kind != kindOpaque &&
			len(payloadBytes) > 0 && Encoding(payloadBytes[0]) == EncodingUTF8 && !EncodingUTF8.valid(version) {
			logger.Warnf("id3v2: keeping frame %q as opaque bytes: %v", fid, perr)
			payload = &OpaqueFrame{Data: append([]byte(nil), payloadBytes...)}
		} else {
			logger.Warnf("id3v2: dropping frame %q: %v", fid, perr)
			return nil, total, nil
		}
	}

	return &Frame{
		FID:          fid,
		RawSize:      rawSize,
		Flags:        flags,
		Payload:      payload,
		version:      version,
		rawFlagBytes: rawFlagBytes,
		hasRawFlags:  hasRawFlags,
	}, total, nil
}

// serialize encodes the frame's header and payload back to bytes.
func (f *Frame) serialize() ([]byte, error) {
	payloadBytes, err := f.Payload.encode(f.version)
	if err != nil {
		return nil, newErr("Frame.serialize", KindParameter, err)
	}

	out := make([]byte, 0, f.version.frameHeaderSize()+len(payloadBytes))
	out = append(out, f.FID...)

	if f.version == Version22 {
		out = append(out, encodeSize24(uint32(len(payloadBytes)))...)
		return append(out, payloadBytes...), nil
	}

	out = append(out, encodeSizePlain(uint32(len(payloadBytes)))...)

	var statusByte, formatByte byte
	if f.hasRawFlags {
		statusByte, formatByte = f.rawFlagBytes[0], f.rawFlagBytes[1]
	} else {
		statusByte, formatByte = encodeFrameFlags(f.Flags)
	}
	out = append(out, statusByte, formatByte)
	return append(out, payloadBytes...), nil
}
