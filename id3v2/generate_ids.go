//go:build ignore

// This is the maintenance tool behind ids.go: it walks the copy of the
// v2.4 frame list from http://id3.org/id3v2.4.0-frames embedded below and
// reports any frame id there that ids.go's v24Table doesn't yet bind to a
// payload kind. The v2.3 and v2.2 tables are not checked. ids.go itself
// is checked in by hand (this
// package does not shell out to `go generate` during a build), but new
// frame ids should be triaged with this tool before being added there.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Taken from http://id3.org/id3v2.4.0-frames.
const v24Spec = `
  4.19  AENC Audio encryption
  4.14  APIC Attached picture
  4.30  ASPI Audio seek point index
  4.10  COMM Comments
  4.24  COMR Commercial frame
  4.25  ENCR Encryption method registration
  4.12  EQU2 Equalisation (2)
  4.5   ETCO Event timing codes
  4.15  GEOB General encapsulated object
  4.26  GRID Group identification registration
  4.20  LINK Linked information
  4.4   MCDI Music CD identifier
  4.6   MLLT MPEG location lookup table
  4.23  OWNE Ownership frame
  4.27  PRIV Private frame
  4.16  PCNT Play counter
  4.17  POPM Popularimeter
  4.21  POSS Position synchronisation frame
  4.18  RBUF Recommended buffer size
  4.11  RVA2 Relative volume adjustment (2)
  4.13  RVRB Reverb
  4.29  SEEK Seek frame
  4.28  SIGN Signature frame
  4.9   SYLT Synchronised lyric/text
  4.7   SYTC Synchronised tempo codes
  4.2   TXXX User defined text information frame
  4.1   UFID Unique file identifier
  4.22  USER Terms of use
  4.8   USLT Unsynchronised lyric/text transcription
  4.3   WXXX User defined URL link frame
`

// knownV24IDs mirrors the keys of v24Table in ids.go. Kept as a separate
// literal (rather than importing the package) since this tool builds as
// package main under the ignore tag and never ships in the module.
var knownV24IDs = strings.Fields(`
	AENC APIC ASPI COMM COMR ENCR EQU2 ETCO GEOB GRID LINK MCDI MLLT OWNE
	PRIV PCNT POPM POSS RBUF RVA2 RVRB SEEK SIGN SYLT SYTC UFID USER USLT
	TALB TBPM TCOM TCON TCOP TDEN TDLY TDOR TDRC TDRL TDTG TENC TEXT TFLT
	TIPL TIT1 TIT2 TIT3 TKEY TLAN TLEN TMCL TMED TMOO TOAL TOFN TOLY TOPE
	TOWN TPE1 TPE2 TPE3 TPE4 TPOS TPRO TPUB TRCK TRSN TRSO TSOA TSOP TSOT
	TSRC TSSE TSST TXXX
	WCOM WCOP WOAF WOAR WOAS WORS WPAY WPUB WXXX
`)

func main() {
	known := map[string]bool{}
	for _, id := range knownV24IDs {
		known[id] = true
	}

	s := bufio.NewScanner(strings.NewReader(v24Spec))
	var missing []string
	for s.Scan() {
		parts := strings.Fields(s.Text())
		if len(parts) < 2 {
			continue
		}
		id := parts[1]
		if len(id) != 4 {
			continue
		}
		if !known[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		fmt.Fprintln(os.Stderr, "ids.go covers every frame id in the v2.4 list above")
		return
	}

	fmt.Fprintln(os.Stderr, "missing from v24Table:", strings.Join(missing, ", "))
	os.Exit(1)
}
