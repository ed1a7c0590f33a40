package id3v2

import (
	"fmt"
	"os"
)

// Mode selects how Open treats the target file (spec.md §4.5).
type Mode int

const (
	// ModeRead opens an existing tag for reading only.
	ModeRead Mode = iota
	// ModeModify opens an existing tag for reading and later commit.
	ModeModify
	// ModeNew ignores any existing tag and starts an empty one at the
	// version passed to Open.
	ModeNew
)

// Tag is an in-memory ID3v2 tag bound to an open file (spec.md §3). The
// Tag owns the file handle and the frame list exclusively; frames are
// mutated freely between Open and Commit and touch the file only when
// Commit is called.
type Tag struct {
	file *os.File
	mode Mode
	opts options

	version Version
	flags   TagFlags
	ext     *extHeader
	footer  bool

	size    uint32 // declared payload size, excluding header/footer
	padding int

	frames []*Frame

	exists bool
}

// Open opens path under mode. For ModeRead/ModeModify a missing "ID3"
// magic fails with a KindHeaderInvalid Error. For ModeNew, an empty tag
// at version is initialized and the file is not read.
func Open(path string, mode Mode, version Version, opts ...Option) (*Tag, error) {
	if !version.valid() {
		return nil, newErr("Open", KindParameter, fmt.Errorf("unsupported version %s", version))
	}
	if mode != ModeRead && mode != ModeModify && mode != ModeNew {
		return nil, newErr("Open", KindParameter, fmt.Errorf("unknown mode %d", mode))
	}
	if path == "" {
		return nil, newErr("Open", KindParameter, fmt.Errorf("empty path"))
	}

	flag := os.O_RDONLY
	if mode == ModeModify || mode == ModeNew {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, newErr("Open", KindIO, err)
	}

	t := &Tag{
		file:    f,
		mode:    mode,
		opts:    newOptions(opts),
		version: version,
	}

	if mode == ModeNew {
		t.newTag(version)
		return t, nil
	}

	if err := t.parseHeader(); err != nil {
		f.Close()
		return nil, err
	}

	if err := t.parseFrames(); err != nil {
		f.Close()
		return nil, err
	}

	return t, nil
}

// NewTag creates a brand new Tag at version that is not attached to any
// file. Its frames can be built and inspected in memory; there is no way
// to attach a file to it afterwards, and Commit on it fails.
func NewTag(version Version, opts ...Option) (*Tag, error) {
	if !version.valid() {
		return nil, newErr("NewTag", KindParameter, fmt.Errorf("unsupported version %s", version))
	}
	t := &Tag{opts: newOptions(opts)}
	t.newTag(version)
	return t, nil
}

func (t *Tag) newTag(version Version) {
	t.version = version
	t.flags = TagFlags{}
	t.ext = nil
	t.footer = false
	t.size = 0
	t.padding = 0
	t.frames = nil
	t.exists = false
}

// Version reports the ID3v2 revision this tag is fixed to for its
// lifetime (spec.md §3 invariant).
func (t *Tag) Version() Version { return t.version }

// TagExists reports whether a valid header was parsed (spec.md §4.5).
func (t *Tag) TagExists() bool { return t.exists }

// Size returns the tag's declared payload size (excludes the 10-byte
// header and any footer).
func (t *Tag) Size() uint32 { return t.size }

// Padding returns the number of trailing null bytes inside the declared
// tag region, as last observed by parse or commit.
func (t *Tag) Padding() int { return t.padding }

// Flags returns the tag-level flags.
func (t *Tag) Flags() TagFlags { return t.flags }

// SetFlags replaces the tag-level flags.
func (t *Tag) SetFlags(f TagFlags) { t.flags = f }

func (t *Tag) parseHeader() error {
	header := make([]byte, tagHeaderSize)
	if _, err := t.file.ReadAt(header, 0); err != nil {
		return newErr("parseHeader", KindHeaderInvalid, err)
	}

	h, err := parseTagHeader(header)
	if err != nil {
		return err
	}

	t.version = h.Version
	t.flags = h.Flags
	t.size = h.Size
	t.exists = true

	if t.flags.Ext {
		extData := make([]byte, t.size)
		n, _ := t.file.ReadAt(extData, int64(tagHeaderSize))
		eh, _, err := parseExtHeader(extData[:n])
		if err != nil {
			return err
		}
		t.ext = &eh
	}

	return nil
}

// parseFrames iterates frames until the declared tag size is exhausted,
// per spec.md §4.5: peek a byte; a 0x00 begins the padding scan.
func (t *Tag) parseFrames() error {
	if !t.exists {
		return nil
	}

	extLen := 0
	if t.ext != nil {
		extLen = len(t.ext.Raw)
	}

	body := make([]byte, t.size)
	if _, err := t.file.ReadAt(body, tagHeaderSize); err != nil {
		return newErr("parseFrames", KindIO, err)
	}

	pos := extLen
	var frames []*Frame

	for pos < len(body) {
		if body[pos] == 0x00 {
			break
		}

		frame, consumed, err := parseFrameFromBytes(t.version, body[pos:], t.opts.logger)
		if err != nil {
			return err
		}
		if consumed == 0 {
			break
		}
		if frame != nil {
			frames = append(frames, frame)
		}
		pos += consumed
	}

	padding := 0
	for ; pos < len(body); pos++ {
		if body[pos] != 0x00 {
			break
		}
		padding++
	}

	t.frames = frames
	t.padding = padding

	return nil
}

// Frames returns the tag's frame list. The returned slice is owned by
// the Tag's caller conventions (spec.md §4.5): mutating it mutates the
// Tag, and nothing is written to the file until Commit.
func (t *Tag) Frames() []*Frame { return t.frames }

// FramesWithID returns every frame whose id matches fid, in order.
func (t *Tag) FramesWithID(fid string) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if f.FID == fid {
			out = append(out, f)
		}
	}
	return out
}

// FirstFrame returns the first frame with the given id, or nil.
func (t *Tag) FirstFrame(fid string) *Frame {
	for _, f := range t.frames {
		if f.FID == fid {
			return f
		}
	}
	return nil
}

// AddFrame constructs a new frame of kind fid with the given payload and
// appends it to the frame list. It fails if fid is unsupported under the
// tag's version.
func (t *Tag) AddFrame(fid string, payload Payload) error {
	if _, ok := lookupKind(t.version, fid); !ok {
		return newErr("AddFrame", KindParameter, fmt.Errorf("frame id %q unsupported under v%s", fid, t.version))
	}

	t.frames = append(t.frames, &Frame{
		FID:     fid,
		Payload: payload,
		version: t.version,
	})
	return nil
}

// RemoveFrame removes the first frame equal to f (by pointer identity)
// from the frame list.
func (t *Tag) RemoveFrame(f *Frame) {
	for i, fr := range t.frames {
		if fr == f {
			t.frames = append(t.frames[:i], t.frames[i+1:]...)
			return
		}
	}
}

// RemoveFramesWithID removes every frame whose id matches fid.
func (t *Tag) RemoveFramesWithID(fid string) {
	out := t.frames[:0]
	for _, f := range t.frames {
		if f.FID != fid {
			out = append(out, f)
		}
	}
	t.frames = out
}

// Close releases the underlying file handle.
func (t *Tag) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}
