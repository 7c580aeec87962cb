package capture

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCaptureFile(t *testing.T, records [][2]float64) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "capture-*.bin")
	require.NoError(t, err)
	defer f.Close()

	for _, r := range records {
		var buf [5]byte
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(float32(r[0])))
		buf[4] = byte(r[1])
		_, err := f.Write(buf[:])
		require.NoError(t, err)
	}
	return f.Name()
}

func TestStartReadsAllRecordsIntoOneBatch(t *testing.T) {
	path := writeCaptureFile(t, [][2]float64{{0.5, 0}, {-0.25, 2}, {1, 0}})

	out, stop, err := Start(path)
	require.NoError(t, err)
	defer stop()

	batch, ok := <-out
	require.True(t, ok)
	require.Len(t, batch.Samples, 3)
	require.InDelta(t, 0.5, batch.Samples[0], 1e-6)
	require.InDelta(t, -0.25, batch.Samples[1], 1e-6)
	require.Equal(t, byte(2), batch.Flags[1])

	_, ok = <-out
	require.False(t, ok, "channel should close after EOF")
}

func TestStartOnMissingFileErrors(t *testing.T) {
	_, _, err := Start("/nonexistent/path/to/capture.bin")
	require.Error(t, err)
}
