// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audstego/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves the channel
// count. A one-pole low-pass filter is applied when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// Window of 4 frames around the interpolation point:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2.
	// Slots past either end of the source hold copies of their neighbour;
	// slots past the end are marked invalid.
	frames [4][]float32
	valid  [4]bool

	// Position between frames[1] and frames[2], in source frames.
	pos float64

	srcBuf []float32
	primed bool
	eof    bool
	done   bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
	filterReady bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one source frame into slot. It reports false once the source
// is exhausted.
func (r *Resampler) pull(slot int) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if err == io.EOF || (err == nil && n == 0) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		return false, nil
	}

	frame := r.frames[slot]
	copy(frame, r.srcBuf)

	if r.useFilter {
		if !r.filterReady {
			copy(r.filterState, frame)
			r.filterReady = true
		}
		for c := range frame {
			frame[c] = r.filterAlpha*frame[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = frame[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(1)
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return io.EOF
	}
	copy(r.frames[0], r.frames[1])
	r.valid[0], r.valid[1] = true, true

	for slot := 2; slot < 4; slot++ {
		ok, err := r.pull(slot)
		if err != nil {
			return err
		}
		r.valid[slot] = ok
		if !ok {
			copy(r.frames[slot], r.frames[slot-1])
		}
	}

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	copy(r.frames[0], r.frames[1])
	copy(r.frames[1], r.frames[2])
	copy(r.frames[2], r.frames[3])
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	ok, err := r.pull(3)
	if err != nil {
		return err
	}
	r.valid[3] = ok
	if !ok {
		copy(r.frames[3], r.frames[2])
	}

	if !r.valid[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	if r.done {
		return 0, io.EOF
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err != io.EOF {
					return written * r.channels, err
				}
				r.done = true
				if written == 0 {
					return 0, io.EOF
				}
				return written * r.channels, io.EOF
			}
		}

		// Past the last source frame only an exact hit on it is emitted.
		if !r.valid[2] && r.pos > 0 {
			r.done = true
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
