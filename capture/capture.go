// Package capture reads a recorded equalizer-input capture from disk
// and pushes it onto a channel, the same role the teacher's rtl_adsb
// package plays turning an external process's stdout into an
// in-process stream — here there is no RF dongle to exec, so the
// source is a plain capture file instead of a subprocess.
package capture

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Batch is one fixed-size slab of equalizer input: samples[i] paired
// with flags[i], the preamble/training annotation the equalizer reads
// off bit 1 of each flag byte.
type Batch struct {
	Samples []float64
	Flags   []byte
}

// batchSize is the number of (sample, flag) records read per Batch.
const batchSize = 4096

// Source reads a capture file of repeated little-endian
// (float32 sample, uint8 flags) records — the on-disk form of the
// equalizer's own input shape.
type Source struct {
	f *os.File
}

// Open opens the capture file at path.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	return &Source{f: f}, nil
}

// Close releases the underlying file handle.
func (s *Source) Close() error { return s.f.Close() }

// Start launches a goroutine that reads Batches from the capture file
// and sends them on the returned channel until EOF or an error, then
// closes the channel. The returned stop function cancels the read
// loop early and releases the file, mirroring rtl_adsb.StartReceive's
// (handler, stopFunc) shape.
func Start(path string) (<-chan Batch, func(), error) {
	src, err := Open(path)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan Batch, 4)
	done := make(chan struct{})

	go func() {
		defer close(out)
		defer src.Close()

		buf := make([]byte, 5) // 4 bytes float32 + 1 byte flags
		for {
			select {
			case <-done:
				return
			default:
			}

			batch := Batch{
				Samples: make([]float64, 0, batchSize),
				Flags:   make([]byte, 0, batchSize),
			}
			for len(batch.Samples) < batchSize {
				if _, err := io.ReadFull(src.f, buf); err != nil {
					if len(batch.Samples) > 0 {
						select {
						case out <- batch:
						case <-done:
						}
					}
					return
				}
				bits := binary.LittleEndian.Uint32(buf[:4])
				sample := float64(math.Float32frombits(bits))
				batch.Samples = append(batch.Samples, sample)
				batch.Flags = append(batch.Flags, buf[4])
			}
			select {
			case out <- batch:
			case <-done:
				return
			}
		}
	}()

	return out, func() { close(done) }, nil
}
