// Package hdlc implements the tag-driven HDLC deframer: given a
// sliced bitstream annotated with preamble and frame-boundary tags,
// it locates complete AIS HDLC frames, validates their CRC-16/X.25,
// and renders the result as 6-bit-armored NMEA 0183 !AIVDM sentences.
//
// This package supersedes the older explicit AIS_IDLE /
// AIS_WAITING_FOR_START / AIS_DATA / AIS_PARSING state machine: that
// design required the deframer to own per-byte scan state across
// calls, whereas the tag-driven design below is stateless apart from
// its diagnostic counters, because the preamble/frame boundaries are
// already known from tags instead of being rediscovered byte by byte.
package hdlc

import (
	"fmt"

	"goais/tags"
	"goais/verbosity"
)

// Scan window constants from the reference deframer: the minimum
// lookahead needed before scanning (lookaheadMargin), how far past a
// preamble a start flag may appear (startWindow), and the minimum/
// maximum frame length counted from the start flag (minFrameLen,
// maxFrameLen).
const (
	lookaheadMargin = 500
	startWindow     = 30
	minFrameLen     = 184
	maxFrameLen     = 450
	// crcLen is the trailing CRC-16 width in bits, included in a
	// frame's raw length but stripped before armoring.
	crcLen = 16
)

// Frame is one deframed and armored AIS HDLC frame.
type Frame struct {
	Designator  byte
	Armored     string // 6-bit ASCII-armored payload (CRC stripped)
	Sentence    string // complete "!AIVDM,1,1,,<D>,<armored>,0*HH"
	CRCOK       bool
	PayloadBits []byte // payload bits (bit-per-byte), CRC stripped, for the decoder
}

// Deframer locates and validates AIS frames in a tagged bitstream. It
// carries no mutable state beyond its diagnostic counters, so a single
// instance may be reused across Process calls by one consumer
// goroutine, matching the single-producer/single-consumer stage model.
type Deframer struct {
	Designator byte
	Verbose    uint8 // see package verbosity

	NumFound     int
	NumStartLost int
	NumStopLost  int
}

// NewDeframer returns a Deframer for the given channel designator
// ('A' or 'B') and verbosity level (0-6), stored as the cumulative
// verbosity.Mask for that level.
func NewDeframer(designator byte, verbose uint8) *Deframer {
	return &Deframer{Designator: designator, Verbose: uint8(verbosity.FromLevel(int(verbose)))}
}

// Process scans w for one complete frame. It returns the frames found
// (zero or one — the reference deframer only ever emits one frame per
// call, leaving any further frames in the window for the next call)
// and the number of bits of w.Bits actually consumed. The caller must
// re-present the unconsumed tail, prefixed to the next window, on the
// following call — this is the same partial-consume backpressure
// contract the equalizer uses.
func (d *Deframer) Process(w tags.Window) (frames []Frame, consumed int) {
	size := len(w.Bits) - lookaheadMargin
	if size <= 0 {
		return nil, 0
	}

	preambleTags := w.InRange(tags.Preamble, w.Base, w.Base+uint64(size))
	if len(preambleTags) == 0 {
		return nil, size
	}
	preambleMark := preambleTags[0].Offset

	startTags := w.InRange(tags.Frame, preambleMark, preambleMark+startWindow)
	if len(startTags) == 0 {
		d.NumStartLost++
		return nil, int(preambleMark+startWindow-w.Base)
	}
	startMark := startTags[0].Offset

	endTags := w.InRange(tags.Frame, startMark+minFrameLen, startMark+maxFrameLen)
	if len(endTags) == 0 {
		d.NumStopLost++
		return nil, int(preambleMark+maxFrameLen-w.Base)
	}
	endMark := endTags[0].Offset

	dataLen := endMark - startMark - 8
	lo := startMark - w.Base
	pkt := make([]byte, dataLen)
	copy(pkt, w.Bits[lo:lo+dataLen])

	d.NumFound++
	if f, ok := d.parseFrame(pkt); ok {
		frames = append(frames, f)
	}

	return frames, int(endMark - w.Base)
}

// parseFrame reverses the frame's bit order, validates its CRC, strips
// the trailing CRC bits, and armors the remaining payload into an
// !AIVDM sentence. ok is false only when the frame's CRC failed and
// the deframer isn't configured to emit failed frames (verbosity < Debug2).
func (d *Deframer) parseFrame(frameBits []byte) (Frame, bool) {
	reverseBitOrder(frameBits)

	crcOK := validateFrameCRC(frameBits)
	debug2 := d.Verbose&0x02 != 0 // verbosity.Debug2
	if !crcOK && !debug2 {
		return Frame{}, false
	}

	payload := frameBits[:len(frameBits)-crcLen]
	armored := Armor(payload)

	sentence := fmt.Sprintf("!AIVDM,1,1,,%c,%s,0", d.Designator, armored)
	checksum := nmeaChecksum(sentence)
	sentence = fmt.Sprintf("%s*%02X", sentence, checksum)
	if debug2 {
		if crcOK {
			sentence += " <- CRC OK!"
		} else {
			sentence += " <- CRC Failed!"
		}
	}

	return Frame{
		Designator:  d.Designator,
		Armored:     armored,
		Sentence:    sentence,
		CRCOK:       crcOK,
		PayloadBits: payload,
	}, true
}

// reverseBitOrder reverses bit order within each 8-bit group of data,
// swapping positions j and 7-j for j in 0..3 — the AIS HDLC bit
// ordering quirk the reference decoder undoes before CRC/armor.
func reverseBitOrder(data []byte) {
	for i := 0; i+8 <= len(data); i += 8 {
		for j := 0; j < 4; j++ {
			data[i+j], data[i+7-j] = data[i+7-j], data[i+j]
		}
	}
}

// armorChar maps a 6-bit value (0-63) to its ITU-R M.1371 ASCII armor
// character.
func armorChar(v byte) byte {
	ch := v
	if ch > 39 {
		ch += 8
	}
	return ch + 48
}

// unarmorChar is armorChar's inverse, mapping an ASCII armor character
// back to its 6-bit value.
func unarmorChar(ch byte) byte {
	v := ch - 48
	if v > 40 {
		v -= 8
	}
	return v & 0x3f
}

// Armor packs payloadBits (bit-per-byte, CRC already stripped) into
// 6-bit groups and renders each as an armor character. A trailing
// partial group shorter than 6 bits is dropped, matching the reference
// encoder's implicit truncation toward whole sextets (len6 := len/6).
func Armor(payloadBits []byte) string {
	n := len(payloadBits) / 6
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = armorChar(packBits(payloadBits[i*6 : i*6+6]))
	}
	return string(out)
}

// Unarmor is Armor's inverse: it decodes an ASCII-armored payload back
// into one 6-bit sextet value per character (not expanded to
// individual bits), the representation the ais package's bit-field
// extractor expects.
func Unarmor(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = unarmorChar(s[i])
	}
	return out
}

// CRC16X25 computes the CRC-16/X.25 value over data, exported for
// testing and for callers that already have packed bytes rather than
// a bit-per-byte frame.
func CRC16X25(data []byte) uint16 { return crc16X25(data) }

// NMEAChecksum computes the NMEA 0183 XOR checksum over s, exported
// for testing.
func NMEAChecksum(s string) byte { return nmeaChecksum(s) }
