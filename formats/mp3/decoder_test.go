// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// chunkedReader serves 16-bit samples in fixed-size byte chunks, which may
// split a sample across two reads.
type chunkedReader struct {
	sampleRate int
	data       []byte
	chunk      int
	failWith   error
}

func newChunkedReader(rate, chunk int, samples ...int16) *chunkedReader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return &chunkedReader{sampleRate: rate, data: data, chunk: chunk}
}

func (c *chunkedReader) SampleRate() int { return c.sampleRate }

func (c *chunkedReader) Read(buf []byte) (int, error) {
	if c.failWith != nil {
		return 0, c.failWith
	}
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n := copy(buf[:min(len(buf), c.chunk)], c.data)
	c.data = c.data[n:]
	if len(c.data) == 0 {
		return n, io.EOF
	}
	return n, nil
}

func readAll(t *testing.T, s *source, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 1000 {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":   {},
		"garbage": []byte("this is not an mp3 stream"),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(in))
			if !errors.Is(err, ErrInvalidStream) {
				t.Errorf("Decode() error = %v, want ErrInvalidStream", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: newChunkedReader(44100, 64), sampleRate: 44100, buf: make([]byte, 8192)}
	if s.SampleRate() != 44100 || s.Channels() != 2 {
		t.Errorf("source = %d Hz / %d ch, want 44100 Hz / 2 ch", s.SampleRate(), s.Channels())
	}
	if s.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", s.BufSize())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	in := []int16{0, 16384, -16384, -32768, 8192, -8192}
	want := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}

	tests := []struct {
		name   string
		chunk  int
		bufLen int
	}{
		{name: "single read", chunk: 1 << 10, bufLen: 64},
		{name: "odd byte chunks", chunk: 3, bufLen: 64},
		{name: "small destination", chunk: 1 << 10, bufLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &source{dec: newChunkedReader(8000, tt.chunk, in...), sampleRate: 8000}
			got := readAll(t, s, tt.bufLen)

			if len(got) != len(want) {
				t.Fatalf("got %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	r := newChunkedReader(8000, 16, 1, 2)
	r.failWith = io.ErrUnexpectedEOF
	s := &source{dec: r, sampleRate: 8000}

	n, err := s.ReadSamples(make([]float32, 8))
	if n != 0 || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.ErrUnexpectedEOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyDestination(t *testing.T) {
	t.Parallel()

	s := &source{dec: newChunkedReader(8000, 16, 1, 2), sampleRate: 8000}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 1<<16)
	for i := range samples {
		samples[i] = int16(i)
	}
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		s := &source{dec: newChunkedReader(44100, 8192, samples...), sampleRate: 44100}
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
