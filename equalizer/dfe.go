// Package equalizer implements the adaptive decision-feedback equalizer
// that sits between the raw demodulated GMSK samples and the HDLC
// deframer. It is a direct port of a decision-directed LMS DFE: a
// feed-forward tap bank sees the incoming sample stream, a feedback
// tap bank sees the equalizer's own past hard decisions, and both tap
// banks adapt on every sample using the LMS rule, with the error taken
// as the sliced decision minus the soft output.
package equalizer

// slice is the hard-decision slicer: GMSK/FM-discriminator output is
// sliced to ±1 on sign, matching the BPSK-equivalent bit decision the
// feedback path trains against.
func slice(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// roundUpPow2 returns the smallest power of two >= v, v >= 1.
func roundUpPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

// ringBuffer is a power-of-two-capacity delay line addressed with a
// bitmask instead of a modulo division, indexed relative to a moving
// head (index) exactly as the source's d_ff_delayline/d_fb_delayline.
type ringBuffer struct {
	buf  []float64
	mask uint32
}

func newRingBuffer(capacity int) ringBuffer {
	capacity = roundUpPow2(capacity)
	return ringBuffer{buf: make([]float64, capacity), mask: uint32(capacity - 1)}
}

func (r *ringBuffer) at(i, head uint32) float64 {
	return r.buf[(i+head)&r.mask]
}

func (r *ringBuffer) set(head uint32, v float64) {
	r.buf[head&r.mask] = v
}

func (r *ringBuffer) zero() {
	for i := range r.buf {
		r.buf[i] = 0
	}
}

// trainingLookahead is the number of post-preamble samples the
// training loop replays (150 in the source); trainingPasses is the
// number of times it replays them (12); debounce is the minimum
// sample count since the last retrain before another is honored (50).
const (
	trainingLookahead = 150
	trainingPasses    = 12
	debounce          = 50
)

// DFE is an adaptive decision-feedback equalizer with lambda_ff/lambda_fb
// step sizes and ffTaps/fbTaps tap counts. It is not safe for concurrent
// use; per the single-producer/single-consumer stage model it is driven
// by exactly one goroutine.
type DFE struct {
	lambdaFF, lambdaFB float64

	ffTaps, fbTaps []float64
	ffLine, fbLine ringBuffer
	ffHead, fbHead uint32

	resetCounter int
}

// NewDFE constructs an equalizer with ffTaps feed-forward and fbTaps
// feedback taps, adapting at rates lambdaFF/lambdaFB. Panics if either
// tap count is zero, matching the source's implicit assumption that
// both tap banks are non-empty (a center FF tap always exists).
func NewDFE(lambdaFF, lambdaFB float64, ffTaps, fbTaps int) *DFE {
	if ffTaps <= 0 || fbTaps <= 0 {
		panic("equalizer: ffTaps and fbTaps must be positive")
	}
	d := &DFE{
		lambdaFF: lambdaFF,
		lambdaFB: lambdaFB,
		ffTaps:   make([]float64, ffTaps),
		fbTaps:   make([]float64, fbTaps),
		ffLine:   newRingBuffer(ffTaps),
		fbLine:   newRingBuffer(fbTaps),
	}
	d.reset()
	return d
}

// reset zeros both tap banks and delay lines, restores the center FF
// tap to unity gain (the all-pass starting point), and resets the
// retrain debounce counter. Delay-line indices are intentionally left
// untouched across a retrain, matching the source (the index reset
// lines are commented out there).
func (d *DFE) reset() {
	for i := range d.ffTaps {
		d.ffTaps[i] = 0
	}
	d.ffTaps[len(d.ffTaps)/2] = 1

	for i := range d.fbTaps {
		d.fbTaps[i] = 0
	}
	d.ffLine.zero()
	d.fbLine.zero()
	d.resetCounter = 0
}

// accumulate runs one LMS update: accumulate the FF/FB taps against
// the current delay lines, slice to a hard decision, compute the
// error against that decision, update both tap banks, and shift the
// feedback decision into its delay line. It returns the pre-slice soft
// value (acc) alongside the hard decision and error so Process can
// emit the soft decision while the training loop can ignore it.
func (d *DFE) accumulate(sample float64) (acc, decision, err float64) {
	d.ffLine.set(d.ffHead, sample)

	for i := range d.ffTaps {
		acc += d.ffLine.at(uint32(i), d.ffHead) * d.ffTaps[i]
	}
	for i := range d.fbTaps {
		acc -= d.fbLine.at(uint32(i), d.fbHead) * d.fbTaps[i]
	}

	decision = slice(acc)
	err = decision - acc

	for i := range d.ffTaps {
		d.ffTaps[i] += d.lambdaFF * err * d.ffLine.at(uint32(i), d.ffHead)
	}
	for i := range d.fbTaps {
		d.fbTaps[i] -= d.lambdaFB * err * d.fbLine.at(uint32(i), d.fbHead)
	}

	d.fbHead = (d.fbHead - 1) & d.fbLine.mask
	d.ffHead = (d.ffHead - 1) & d.ffLine.mask
	d.fbLine.set(d.fbHead, decision)

	return acc, decision, err
}

// Process consumes samples[:n] alongside flags[:n] (bit 1 of flags[i]
// is the preamble marker for sample i) and appends the equalized soft
// decision for each consumed sample to out. It returns the number of
// samples actually consumed, which is less than len(samples) exactly
// when a preamble marker is seen with fewer than trainingLookahead
// samples remaining in the batch — the caller must re-present the
// unconsumed tail, prefixed to the next read, on the following call.
func (d *DFE) Process(samples []float64, flags []byte) (out []float64, consumed int) {
	n := len(samples)
	if len(flags) < n {
		n = len(flags)
	}
	out = make([]float64, 0, n)

	i := 0
	for i < n {
		if flags[i]&0x02 != 0 && d.resetCounter > debounce {
			remaining := n - i - 1
			if remaining < trainingLookahead {
				return out, i
			}
			d.reset()
			d.train(samples[i+1 : i+1+trainingLookahead])
		}

		d.resetCounter++
		acc, _, _ := d.accumulate(samples[i])
		out = append(out, acc)
		i++
	}
	return out, i
}

// train replays window (exactly trainingLookahead samples) trainingPasses
// times through the decision-directed LMS update without advancing the
// caller's read position or emitting output, matching the source's
// nested k<12 / iptr_train<150 training loop.
func (d *DFE) train(window []float64) {
	for k := 0; k < trainingPasses; k++ {
		for _, s := range window {
			d.accumulate(s)
		}
	}
}
