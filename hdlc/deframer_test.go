package hdlc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goais/tags"
)

func TestNMEAChecksumKnownSentence(t *testing.T) {
	body := "AIVDM,1,1,,A,13u?etPv2;0n?nNKJr?KHqQ20<0<,0"
	require.Equal(t, byte(0x4C), NMEAChecksum(body))
}

func TestNMEAChecksumIgnoresLeadingBang(t *testing.T) {
	body := "AIVDM,1,1,,A,13u?etPv2;0n?nNKJr?KHqQ20<0<,0"
	require.Equal(t, NMEAChecksum(body), NMEAChecksum("!"+body))
}

func TestArmorUnarmorRoundTrip(t *testing.T) {
	for v := byte(0); v < 64; v++ {
		ch := armorChar(v)
		require.Equal(t, v, unarmorChar(ch))
	}
}

func TestArmorCharacterRangeInvariant(t *testing.T) {
	for v := byte(0); v < 64; v++ {
		ch := armorChar(v)
		inLow := ch >= '0' && ch <= 'W'
		inHigh := ch >= '`' && ch <= 'w'
		require.True(t, inLow || inHigh, "armor char %q out of range for v=%d", ch, v)
	}
}

func TestReverseBitOrderInvolution(t *testing.T) {
	orig := []byte{1, 0, 1, 1, 0, 0, 1, 0}
	data := append([]byte(nil), orig...)
	reverseBitOrder(data)
	reverseBitOrder(data)
	require.Equal(t, orig, data)
}

// bitsFromBytes expands data into one-bit-per-byte form, MSB-first,
// matching what packBits folds back together.
func bitsFromBytes(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&0x01)
		}
	}
	return bits
}

// frameWithGoodCRC appends payload's CRC-16/X.25 check value (the
// ones' complement of the running CRC, low byte first) and returns
// the result as one-bit-per-byte frame data, the form validateFrameCRC
// expects.
func frameWithGoodCRC(payload []byte) []byte {
	crc := crc16X25(payload)
	check := ^crc
	frame := append(append([]byte{}, payload...), byte(check), byte(check>>8))
	return bitsFromBytes(frame)
}

func TestCRC16X25ValidatesGoodFrameAndRejectsAnySingleBitFlip(t *testing.T) {
	payload := []byte{0x13, 0x75, 0x3A, 0x01, 0xDE, 0xAD, 0xBE, 0xEF}
	frameBits := frameWithGoodCRC(payload)
	require.True(t, validateFrameCRC(frameBits))

	for i := range frameBits {
		flipped := append([]byte(nil), frameBits...)
		flipped[i] ^= 0x01
		require.False(t, validateFrameCRC(flipped), "flipping bit %d should break the CRC", i)
	}
}

func TestDeframerReturnsZeroConsumedWhenBelowLookaheadMargin(t *testing.T) {
	d := NewDeframer('A', 0)
	w := tags.Window{Base: 0, Bits: make([]byte, 100)}
	frames, consumed := d.Process(w)
	require.Empty(t, frames)
	require.Equal(t, 0, consumed)
}

func TestDeframerSkipsWindowWithNoPreambleTag(t *testing.T) {
	d := NewDeframer('A', 0)
	bits := make([]byte, 600)
	w := tags.Window{Base: 1000, Bits: bits}
	frames, consumed := d.Process(w)
	require.Empty(t, frames)
	require.Equal(t, 100, consumed) // size = 600 - lookaheadMargin
}

func TestDeframerCountsStartLostWhenNoFrameTagFollowsPreamble(t *testing.T) {
	d := NewDeframer('A', 0)
	bits := make([]byte, 600)
	base := uint64(1000)
	w := tags.Window{
		Base: base,
		Bits: bits,
		Tags: []tags.Tag{{Offset: base + 10, Kind: tags.Preamble}},
	}
	frames, consumed := d.Process(w)
	require.Empty(t, frames)
	require.Equal(t, 1, d.NumStartLost)
	require.Equal(t, int(base+10+startWindow-base), consumed)
}
