// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/ik5/audstego/internal/audiotest"
)

type stubDecoder struct{ name string }

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	dec := &stubDecoder{name: "mp3"}
	registry.Register("mp3", dec)

	got, ok := registry.Get("mp3")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != dec {
		t.Error("Registry.Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("ogg", &stubDecoder{})
	registry.Register("aiff", &stubDecoder{})
	registry.Register("mp3", &stubDecoder{})

	want := []string{"aiff", "mp3", "ogg"}
	if got := registry.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 1000, func(sample, channel int) float32 {
		return float32(channel)
	})

	got, err := ReadAll(src, 333)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 2000 {
		t.Fatalf("ReadAll() returned %d samples, want 2000", len(got))
	}
	for i := 0; i < len(got); i += 2 {
		if got[i] != 0 || got[i+1] != 1 {
			t.Fatalf("frame %d = (%v, %v), want (0, 1)", i/2, got[i], got[i+1])
		}
	}
}

func TestReadAll_InvalidBufferSize(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(audiotest.NewSilentSource(8000, 1, 10), 0)
	if !errors.Is(err, ErrEmptyBufferSize) {
		t.Errorf("ReadAll() error = %v, want ErrEmptyBufferSize", err)
	}
}

// intStub is an IntSource over a fixed slice, read in chunks of at most step.
type intStub struct {
	samples  []int
	channels int
	step     int
}

func (s *intStub) SampleRate() int                    { return 8000 }
func (s *intStub) Channels() int                      { return s.channels }
func (s *intStub) BufSize() int                       { return s.step }
func (s *intStub) Close() error                       { return nil }
func (s *intStub) BitDepth() int                      { return 32 }
func (s *intStub) ReadSamples([]float32) (int, error) { return 0, io.EOF }

func (s *intStub) ReadInts(dst []int) (int, error) {
	if len(s.samples) == 0 {
		return 0, io.EOF
	}

	n := copy(dst[:min(len(dst), s.step)], s.samples)
	s.samples = s.samples[n:]
	return n, nil
}

func TestReadAllInts(t *testing.T) {
	t.Parallel()

	want := []int{2147483647, -2147483648, 16777217, -16777217, 3, -3}
	src := &intStub{samples: append([]int(nil), want...), channels: 2, step: 4}

	got, err := ReadAllInts(src, 3)
	if err != nil {
		t.Fatalf("ReadAllInts() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadAllInts() = %v, want %v", got, want)
	}

	if _, err := ReadAllInts(src, -1); !errors.Is(err, ErrEmptyBufferSize) {
		t.Errorf("ReadAllInts() error = %v, want ErrEmptyBufferSize", err)
	}
}
