// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes integer PCM AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
// AIFF is lossless, so running a carrier through an AIFF round trip is the
// baseline of a robustness sweep: the payload must survive it bit for bit
// as long as the sample format is unchanged. 8, 16, 24 and 32-bit samples
// are accepted and normalised to [-1, 1).
//
// Input that does not implement io.Seeker is buffered in memory first.
package aiff
