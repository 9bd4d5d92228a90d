// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audstego/audio"
	"github.com/ik5/audstego/utils"
)

type pcmSource struct {
	samples    []int
	pos        int
	sampleRate int
	channels   int
	bitDepth   int
}

// NewSource exposes an in-memory carrier as an audio.IntSource.
func NewSource(p *PCM) audio.IntSource {
	buf := p.IntBuffer()

	return &pcmSource{
		samples:    buf.Data,
		sampleRate: p.Format.SampleRate,
		channels:   p.Format.Channels,
		bitDepth:   p.Format.BitDepth,
	}
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) BufSize() int    { return 4096 }
func (s *pcmSource) Close() error    { return nil }
func (s *pcmSource) BitDepth() int   { return s.bitDepth }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copyFloat(dst, s.samples[s.pos:], s.bitDepth)
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}

func (s *pcmSource) ReadInts(dst []int) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}

func copyFloat(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.PCMToFloat(int32(src[i]), bitDepth)
	}
	return n
}

// Decoder reads integer PCM WAV (8, 16, 24 or 32-bit) into an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	p, err := ReadPCM(rs)
	if err != nil {
		return nil, err
	}

	return NewSource(p), nil
}
