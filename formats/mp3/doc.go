// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into an audio.Source.
//
// It is used to read back carriers after they were pushed through a lossy
// MP3 encode, so the decoded signal can be compared with the original or
// searched for a hidden payload.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit interleaved stereo at the stream's sample rate. Mono input is
// therefore returned duplicated on both channels; use audio.NewChannelAdapter
// to fold it back:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	mono, err := audio.NewChannelAdapter(src, 1)
//
// Encoding is not supported.
package mp3
