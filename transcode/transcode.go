// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"

	"github.com/ik5/audstego/audio"
	"github.com/ik5/audstego/formats/wav"
)

// Transcoder pushes a carrier through a lossy representation at
// bitrateKbps and back. The result has the same format and frame count as
// src. Intermediate files go under workDir, which the caller owns.
type Transcoder interface {
	Transcode(workDir string, src *wav.PCM, bitrateKbps int) (*wav.PCM, error)
}

// Func adapts a plain function to Transcoder.
type Func func(workDir string, src *wav.PCM, bitrateKbps int) (*wav.PCM, error)

func (f Func) Transcode(workDir string, src *wav.PCM, bitrateKbps int) (*wav.PCM, error) {
	return f(workDir, src, bitrateKbps)
}

// Conform turns a decoded signal back into a carrier of format target with
// exactly frames frames: it resamples, adapts the channel count, quantizes
// to the target bit depth and trims or zero pads the tail. A negative frames
// keeps whatever length the signal has after resampling.
//
// An audio.IntSource already at the target rate, channel count and bit
// depth is copied as integers, so every bit of a lossless signal survives.
func Conform(src audio.Source, target wav.Format, frames int) (*wav.PCM, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if is, ok := src.(audio.IntSource); ok && matches(is, target) {
		samples, err := audio.ReadAllInts(is, 4096*target.Channels)
		if err != nil {
			return nil, fmt.Errorf("reading decoded signal: %w", err)
		}

		return wav.NewPCMFromInts(target, fit(samples, frames, target.Channels)), nil
	}

	var s audio.Source = src
	if s.SampleRate() != target.SampleRate {
		s = audio.NewResampler(s, target.SampleRate)
	}

	s, err := audio.NewChannelAdapter(s, target.Channels)
	if err != nil {
		return nil, fmt.Errorf("adapting channels: %w", err)
	}

	samples, err := audio.ReadAll(s, 4096*target.Channels)
	if err != nil {
		return nil, fmt.Errorf("reading decoded signal: %w", err)
	}

	return wav.NewPCMFromFloat(target, fit(samples, frames, target.Channels)), nil
}

func matches(s audio.IntSource, f wav.Format) bool {
	return s.SampleRate() == f.SampleRate && s.Channels() == f.Channels && s.BitDepth() == f.BitDepth
}

// fit trims or zero pads samples to frames whole frames. A negative frames
// only drops a trailing partial frame.
func fit[T float32 | int](samples []T, frames, channels int) []T {
	want := frames * channels
	if frames < 0 {
		want = len(samples) - len(samples)%channels
	}

	if len(samples) > want {
		return samples[:want]
	}

	return append(samples, make([]T, want-len(samples))...)
}
