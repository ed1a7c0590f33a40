package id3v2

// Frame ids referenced by the sugar accessors below.
const (
	titleFrameID  = "TIT2"
	artistFrameID = "TPE1"
	albumFrameID  = "TALB"
	genreFrameID  = "TCON"
	yearFrameIDv2 = "TYE"
	yearFrameIDv3 = "TYER"
	yearFrameIDv4 = "TDRC"
)

// commonIDsV23 maps a human-readable frame description to its ID3v2.3
// four-character frame id. Callers writing new frames by description go
// through this table rather than memorizing four-character ids.
var commonIDsV23 = map[string]string{
	"Album/Movie/Show title":             albumFrameID,
	"Attached picture":                   "APIC",
	"Band/Orchestra/Accompaniment":       "TPE2",
	"Comments":                           "COMM",
	"Composer":                           "TCOM",
	"Content type":                       genreFrameID,
	"Copyright message":                  "TCOP",
	"Encoded by":                         "TENC",
	"Language":                           "TLAN",
	"Lead artist/Lead performer/Soloist": artistFrameID,
	"Original artist/performer":          "TOPE",
	"Part of a set":                      "TPOS",
	"Publisher":                          "TPUB",
	"Title/Songname/Content description": titleFrameID,
	"Track number/Position in set":       "TRCK",
	"Unsynchronised lyrics/text":         "USLT",
	"User defined text information":      "TXXX",
	"Year":                               yearFrameIDv3,

	"Artist": artistFrameID,
	"Genre":  genreFrameID,
	"Title":  titleFrameID,
	"Album":  albumFrameID,
}

// commonIDsV24 is commonIDsV23 with the v2.4 timestamp-frame changes: TYER,
// TDAT, TIME, and TORY collapse into TDRC/TDOR.
var commonIDsV24 = buildV24CommonIDs()

func buildV24CommonIDs() map[string]string {
	out := make(map[string]string, len(commonIDsV23)+2)
	for k, v := range commonIDsV23 {
		out[k] = v
	}
	out["Year"] = yearFrameIDv4
	out["Recording time"] = yearFrameIDv4
	out["Original release time"] = "TDOR"
	return out
}

// CommonID resolves a human-readable frame description to a frame id:
// the v2.4 id under Version24, the v2.3 id otherwise. Under Version22 it
// returns the same four-character v2.3 ids, which are not valid v2.2
// frame ids. The returned bool is false when description is unknown.
func CommonID(version Version, description string) (string, bool) {
	table := commonIDsV23
	if version == Version24 {
		table = commonIDsV24
	}
	id, ok := table[description]
	return id, ok
}

// sequenced frame ids carry more than one instance per tag (attachments,
// comments, lyrics, user text) and are addressed by description rather than
// by a single canonical value, unlike Title/Artist/Album/Year/Genre.
func isSequencedFrameID(fid string) bool {
	switch fid {
	case "APIC", "PIC", "COMM", "COM", "USLT", "ULT", "TXXX", "TXX", "WXXX", "WXX", "GEOB", "GEO":
		return true
	}
	return false
}
