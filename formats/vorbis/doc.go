// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// The robustness sweep can run its lossy round trip through Vorbis instead
// of MP3; this package reads the encoded file back. Channel count and sample
// rate come from the stream header and samples are already float32.
package vorbis
