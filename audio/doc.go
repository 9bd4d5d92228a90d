// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives used to bring decoded audio
// into the shape of a carrier: a pull-based Source, sample-rate and channel
// converters, and a Registry of decoders keyed by container name.
//
// # Sources
//
// A Source yields interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns a count of values, not frames. A stream ends with
// n == 0 and io.EOF. Converters wrap a Source and are Sources themselves,
// so they stack:
//
//	src := audio.NewResampler(decoded, 44100)
//	src, err := audio.NewChannelAdapter(src, 2)
//	samples, err := audio.ReadAll(src, 4096)
//
// # Converters
//
// Resampler changes the rate with Catmull-Rom interpolation per channel.
// MonoMixer averages all channels into one. NewChannelAdapter maps to any
// channel count: down to mono through MonoMixer, up from mono by
// duplication, and otherwise by dropping or repeating trailing channels.
//
// # Registry
//
// A Registry is safe for concurrent use. It lets callers pick a decoder by
// file extension or codec name:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
