// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type sliceReader struct {
	rate     int
	channels int
	data     []float32
	maxRead  int
	failWith error
}

func (r *sliceReader) SampleRate() int { return r.rate }
func (r *sliceReader) Channels() int   { return r.channels }

func (r *sliceReader) Read(p []float32) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if len(r.data) == 0 {
		return 0, io.EOF
	}

	limit := len(p)
	if r.maxRead > 0 {
		limit = min(limit, r.maxRead)
	}
	n := copy(p[:limit], r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	for name, in := range map[string][]byte{
		"empty":   {},
		"garbage": []byte("OggS but not really a vorbis stream at all"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(in)); !errors.Is(err, ErrInvalidStream) {
				t.Errorf("Decode() error = %v, want ErrInvalidStream", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: &sliceReader{rate: 48000, channels: 2}, channels: 2}
	if s.SampleRate() != 48000 || s.Channels() != 2 {
		t.Errorf("source = %d Hz / %d ch, want 48000 Hz / 2 ch", s.SampleRate(), s.Channels())
	}
	if s.BufSize()%2 != 0 {
		t.Errorf("BufSize() = %d, want a whole number of frames", s.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4}

	tests := []struct {
		name     string
		channels int
		bufLen   int
		maxRead  int
	}{
		{name: "mono", channels: 1, bufLen: 16},
		{name: "stereo", channels: 2, bufLen: 16},
		{name: "stereo odd destination", channels: 2, bufLen: 3},
		{name: "quad short reads", channels: 4, bufLen: 8, maxRead: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := append([]float32(nil), data...)
			s := &source{dec: &sliceReader{rate: 8000, channels: tt.channels, data: in, maxRead: tt.maxRead}, channels: tt.channels}

			var got []float32
			buf := make([]float32, tt.bufLen)
			for range 100 {
				n, err := s.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("ReadSamples() n = %d, not a whole frame", n)
				}
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(data) {
				t.Fatalf("got %d samples, want %d", len(got), len(data))
			}
			for i := range data {
				if got[i] != data[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], data[i])
				}
			}
		})
	}
}

func TestSource_ReadSamples_PartialFrameDestination(t *testing.T) {
	t.Parallel()

	s := &source{dec: &sliceReader{rate: 8000, channels: 2, data: []float32{1, 1}}, channels: 2}
	if n, err := s.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(len 1) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	s := &source{dec: &sliceReader{rate: 8000, channels: 1, failWith: io.ErrUnexpectedEOF}, channels: 1}
	if _, err := s.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
