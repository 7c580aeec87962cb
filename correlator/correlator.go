// Package correlator turns the equalizer's sliced soft-decision stream
// into the tagged bit-per-byte window the deframer expects: it slices
// each sample to a hard bit, forwards the equalizer's preamble marks,
// and synthesizes a frame tag at every HDLC flag octet (0x7E) it finds.
//
// This stands in for the correlator stage spec.md places out of scope
// (the "preamble correlator" mentioned alongside the RF front end); it
// is intentionally minimal, since the deframer's own CRC check is the
// real backstop against a false frame boundary.
package correlator

import "goais/tags"

// flagOctet is the HDLC flag byte (0x7E) the correlator watches for,
// as the bit sequence it arrives in. 0x7E (01111110) reads the same in
// either bit order, so the deframer's reverseBitOrder is not involved.
var flagOctet = [8]byte{0, 1, 1, 1, 1, 1, 1, 0}

// Tag slices samples to hard bits and annotates the result with Frame
// tags at every 0x7E octet boundary, carrying preambleOffsets through
// unchanged as Preamble tags. base is the absolute stream offset of
// samples[0].
func Tag(base uint64, samples []float64, preambleOffsets []uint64) tags.Window {
	bits := make([]byte, len(samples))
	for i, s := range samples {
		if s > 0 {
			bits[i] = 1
		}
	}

	var out []tags.Tag
	for _, off := range preambleOffsets {
		out = append(out, tags.Tag{Offset: off, Kind: tags.Preamble})
	}

	for i := 0; i+8 <= len(bits); i++ {
		if matchesFlag(bits[i : i+8]) {
			out = append(out, tags.Tag{Offset: base + uint64(i), Kind: tags.Frame})
		}
	}

	return tags.Window{Base: base, Bits: bits, Tags: out}
}

func matchesFlag(window []byte) bool {
	for i, want := range flagOctet {
		if window[i] != want {
			return false
		}
	}
	return true
}

// PreambleOffsets extracts the absolute offsets of every flags[i]&0x02
// preamble marker in a batch starting at base, the form the equalizer
// emits them in and the form Tag expects them in.
func PreambleOffsets(base uint64, flags []byte) []uint64 {
	var out []uint64
	for i, f := range flags {
		if f&0x02 != 0 {
			out = append(out, base+uint64(i))
		}
	}
	return out
}
