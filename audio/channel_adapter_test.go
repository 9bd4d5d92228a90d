// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audstego/internal/audiotest"
)

func TestChannelAdapter_SameLayoutIsPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	got, err := NewChannelAdapter(src, 2)
	if err != nil {
		t.Fatalf("NewChannelAdapter() error = %v", err)
	}
	if got != Source(src) {
		t.Error("NewChannelAdapter() wrapped a source that already matches")
	}
}

func TestChannelAdapter_MonoToStereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 50, func(sample, channel int) float32 {
		return float32(sample) / 100
	})
	adapted, err := NewChannelAdapter(src, 2)
	if err != nil {
		t.Fatalf("NewChannelAdapter() error = %v", err)
	}

	got, err := ReadAll(adapted, 16)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("got %d samples, want 100", len(got))
	}
	for f := range 50 {
		want := float32(f) / 100
		if got[2*f] != want || got[2*f+1] != want {
			t.Errorf("frame %d = (%v, %v), want both %v", f, got[2*f], got[2*f+1], want)
		}
	}
}

func TestChannelAdapter_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 20, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return 0.4
	})
	adapted, err := NewChannelAdapter(src, 1)
	if err != nil {
		t.Fatalf("NewChannelAdapter() error = %v", err)
	}
	if adapted.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", adapted.Channels())
	}

	got, err := ReadAll(adapted, 8)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 20 {
		t.Fatalf("got %d samples, want 20", len(got))
	}
}

func TestChannelAdapter_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewChannelAdapter(audiotest.NewSilentSource(8000, 2, 10), 0)
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewChannelAdapter(0) error = %v, want ErrInvalidChannels", err)
	}

	adapted, _ := NewChannelAdapter(audiotest.NewSilentSource(8000, 1, 10), 3)
	if _, err := adapted.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}
