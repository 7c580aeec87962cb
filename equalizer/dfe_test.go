package equalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDFECenterTapIsUnity(t *testing.T) {
	d := NewDFE(0.001, 0.001, 7, 5)
	require.Equal(t, 1.0, d.ffTaps[3])
	for i, v := range d.ffTaps {
		if i != 3 {
			require.Zero(t, v)
		}
	}
	for _, v := range d.fbTaps {
		require.Zero(t, v)
	}
}

func TestProcessPassesCleanSignalThrough(t *testing.T) {
	d := NewDFE(0.01, 0.01, 7, 3)
	samples := make([]float64, 64)
	flags := make([]byte, 64)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1.0
		} else {
			samples[i] = -1.0
		}
	}
	out, consumed := d.Process(samples, flags)
	require.Equal(t, len(samples), consumed)
	require.Len(t, out, len(samples))
	// With only a unity center tap (index 3 of 7) and no noise the
	// output reproduces the input sign three samples later.
	require.Equal(t, samples[0], slice(out[3]))
}

func TestProcessReturnsPartialConsumeOnShortLookahead(t *testing.T) {
	d := NewDFE(0.01, 0.01, 7, 3)
	d.resetCounter = debounce + 1

	n := 40
	samples := make([]float64, n)
	flags := make([]byte, n)
	flags[5] = 0x02 // preamble marker with only 34 samples left, < 150 required

	out, consumed := d.Process(samples, flags)
	require.Equal(t, 5, consumed)
	require.Len(t, out, 5)
}

func TestProcessRetrainsOnPreambleAfterDebounce(t *testing.T) {
	d := NewDFE(0.05, 0.05, 7, 3)
	d.resetCounter = debounce + 1
	// perturb the taps so reset() is observably different from the
	// freshly-constructed state
	d.ffTaps[0] = 42

	n := trainingLookahead + 10
	samples := make([]float64, n)
	flags := make([]byte, n)
	flags[0] = 0x02
	for i := range samples {
		samples[i] = 1
	}

	out, consumed := d.Process(samples, flags)
	require.Equal(t, n, consumed)
	require.Len(t, out, n)
	require.NotEqual(t, 42.0, d.ffTaps[0])
}

func TestRingBufferPowerOfTwoSizing(t *testing.T) {
	r := newRingBuffer(5)
	require.Len(t, r.buf, 8)
	require.Equal(t, uint32(7), r.mask)
}
