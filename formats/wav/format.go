// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audstego/utils"
)

// Format describes the sample layout of a PCM carrier.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// BytesPerSample is the width of one channel sample.
func (f Format) BytesPerSample() int { return f.BitDepth / 8 }

// BlockAlign is the width of one interleaved frame.
func (f Format) BlockAlign() int { return f.BytesPerSample() * f.Channels }

func (f Format) Validate() error {
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, f.BitDepth)
	}

	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidFormat, f.SampleRate, f.Channels)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d-bit, %d ch", f.SampleRate, f.BitDepth, f.Channels)
}

// PCM is an uncompressed carrier: the format descriptor plus the raw bytes
// of the data chunk, exactly as stored in the file.
type PCM struct {
	Format Format
	Data   []byte
}

// Frames is the number of complete interleaved frames in Data.
func (p *PCM) Frames() int {
	if align := p.Format.BlockAlign(); align > 0 {
		return len(p.Data) / align
	}
	return 0
}

// Capacity is the number of hideable bits: one per data byte.
func (p *PCM) Capacity() int { return len(p.Data) }

// Clone returns a deep copy.
func (p *PCM) Clone() *PCM {
	data := make([]byte, len(p.Data))
	copy(data, p.Data)

	return &PCM{Format: p.Format, Data: data}
}

// WithData returns a carrier sharing p's format around data.
func (p *PCM) WithData(data []byte) *PCM {
	return &PCM{Format: p.Format, Data: data}
}

// IntBuffer decodes the sample bytes into a go-audio buffer. 8-bit samples
// are re-centred around zero.
func (p *PCM) IntBuffer() *goaudio.IntBuffer {
	width := p.Format.BytesPerSample()
	n := 0
	if width > 0 {
		n = len(p.Data) / width
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: p.Format.Channels,
			SampleRate:  p.Format.SampleRate,
		},
		Data:           make([]int, n),
		SourceBitDepth: p.Format.BitDepth,
	}

	for i := range n {
		buf.Data[i] = int(decodeSample(p.Data[i*width:], p.Format.BitDepth))
	}

	return buf
}

// NewPCMFromFloat quantizes interleaved float samples in [-1, 1] into a
// carrier of format f.
func NewPCMFromFloat(f Format, samples []float32) *PCM {
	width := f.BytesPerSample()
	data := make([]byte, len(samples)*width)
	for i, s := range samples {
		encodeSample(data[i*width:], utils.FloatToPCM(s, f.BitDepth), f.BitDepth)
	}

	return &PCM{Format: f, Data: data}
}

// NewPCMFromInts packs interleaved integer samples, already at the bit depth
// of f, into a carrier. Values are stored as is, without clamping.
func NewPCMFromInts(f Format, samples []int) *PCM {
	width := f.BytesPerSample()
	data := make([]byte, len(samples)*width)
	for i, s := range samples {
		encodeSample(data[i*width:], int32(s), f.BitDepth)
	}

	return &PCM{Format: f, Data: data}
}

func decodeSample(b []byte, bitDepth int) int32 {
	switch bitDepth {
	case 8:
		return int32(b[0]) - 128
	case 16:
		return int32(int16(binary.LittleEndian.Uint16(b)))
	case 24:
		v := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
		return v << 8 >> 8
	default:
		return int32(binary.LittleEndian.Uint32(b))
	}
}

func encodeSample(dst []byte, v int32, bitDepth int) {
	switch bitDepth {
	case 8:
		dst[0] = byte(v + 128)
	case 16:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 24:
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	default:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	}
}
