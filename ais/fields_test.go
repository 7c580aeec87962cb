package ais

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// packValue is a test-local inverse of ValueAt: it writes v as a
// length-bit field starting at bitPos into a sextet array, addressing
// bits the same way ValueAt reads them (bit 0 of a sextet is its MSB).
func packValue(ais []byte, bitPos, length int, v uint64) {
	for i := 0; i < length; i++ {
		bit := byte((v >> uint(length-1-i)) & 1)
		pos := bitPos + i
		byteIdx := pos / 6
		shift := 5 - (pos % 6)
		if bit != 0 {
			ais[byteIdx] |= 1 << uint(shift)
		} else {
			ais[byteIdx] &^= 1 << uint(shift)
		}
	}
}

func sextets(n int) []byte { return make([]byte, n) }

func TestValueAtRoundTripsPackedValues(t *testing.T) {
	cases := []struct {
		name          string
		bitPos, length int
		value         uint64
	}{
		{"byte-aligned 6-bit", 0, 6, 37},
		{"unaligned 1-bit", 5, 1, 1},
		{"spans two sextets", 3, 8, 200},
		{"spans several sextets", 10, 30, 987654321},
		{"30-bit MMSI-sized field", 8, 30, 265547250},
		{"zero value", 6, 10, 0},
		{"max value for width", 2, 12, (1<<12)-1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := sextets((c.bitPos + c.length + 5) / 6)
			packValue(buf, c.bitPos, c.length, c.value)
			require.Equal(t, c.value, ValueAt(buf, c.bitPos, c.length))
		})
	}
}

func TestSignedValueAtRoundTripsNegativeValues(t *testing.T) {
	buf := sextets(10)
	neg := int64(-127)
	packValue(buf, 12, 8, uint64(neg)&0xff)
	require.Equal(t, int64(-127), SignedValueAt(buf, 12, 8))
}

func TestSignedValueAtRoundTripsPositiveValues(t *testing.T) {
	buf := sextets(10)
	packValue(buf, 12, 8, 100)
	require.Equal(t, int64(100), SignedValueAt(buf, 12, 8))
}
