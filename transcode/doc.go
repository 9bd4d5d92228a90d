// SPDX-License-Identifier: EPL-2.0

// Package transcode simulates a lossy channel: a carrier is encoded to MP3
// or Ogg Vorbis at a given bitrate and decoded back to PCM of the original
// format.
//
// The capability is the Transcoder interface so tests can plug in a Func
// that distorts samples directly. FFmpeg is the real implementation. It
// runs the ffmpeg binary for the encode step, since no pure Go MP3 or Vorbis
// encoder is available, and decodes with the in-process decoders from the
// formats packages:
//
//	t := transcode.NewFFmpeg("ffmpeg", transcode.MP3, log)
//	out, err := t.Transcode(dir, carrier, 128)
//
// Whatever the codec does to the timeline (resampling, channel layout,
// encoder delay padding), Conform brings the result back to the carrier's
// sample rate, channel count, bit depth and frame count.
package transcode
