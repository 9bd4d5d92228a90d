// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Codec is the intermediate format a carrier is pushed through.
type Codec string

const (
	MP3    Codec = "mp3"
	Vorbis Codec = "ogg"
	// AIFF is lossless; it ignores the bitrate and serves as a control.
	AIFF Codec = "aiff"
)

func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mp3", "mpeg":
		return MP3, nil
	case "ogg", "vorbis":
		return Vorbis, nil
	case "aiff", "aif":
		return AIFF, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

func (c Codec) String() string { return string(c) }

// Lossy reports whether the bitrate affects the result.
func (c Codec) Lossy() bool { return c != AIFF }

// encoderArgs are the ffmpeg output options for c.
func (c Codec) encoderArgs(bitrateKbps, bitDepth int) []string {
	rate := strconv.Itoa(bitrateKbps) + "k"

	switch c {
	case Vorbis:
		return []string{"-c:a", "libvorbis", "-b:a", rate, "-f", "ogg"}
	case AIFF:
		sampleFmt := "pcm_s16be"
		switch bitDepth {
		case 8:
			sampleFmt = "pcm_s8"
		case 24:
			sampleFmt = "pcm_s24be"
		case 32:
			sampleFmt = "pcm_s32be"
		}
		return []string{"-c:a", sampleFmt, "-f", "aiff"}
	default:
		return []string{"-c:a", "libmp3lame", "-b:a", rate, "-f", "mp3"}
	}
}
