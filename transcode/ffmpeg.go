// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/audstego/audio"
	"github.com/ik5/audstego/formats/aiff"
	"github.com/ik5/audstego/formats/mp3"
	"github.com/ik5/audstego/formats/vorbis"
	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/logger"
)

// FFmpeg encodes with an external ffmpeg binary and decodes the result
// in-process through Registry.
type FFmpeg struct {
	Binary   string
	Codec    Codec
	Registry *audio.Registry
	Logger   *slog.Logger
}

// NewFFmpeg returns an FFmpeg using binary (looked up in PATH when it has no
// directory part) and the decoders of DefaultRegistry.
func NewFFmpeg(binary string, codec Codec, log *slog.Logger) *FFmpeg {
	if binary == "" {
		binary = "ffmpeg"
	}

	return &FFmpeg{
		Binary:   binary,
		Codec:    codec,
		Registry: DefaultRegistry(),
		Logger:   logger.OrDiscard(log),
	}
}

// DefaultRegistry knows every format an FFmpeg transcode can produce.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(string(MP3), mp3.Decoder{})
	r.Register(string(Vorbis), vorbis.Decoder{})
	r.Register(string(AIFF), aiff.Decoder{})
	r.Register("wav", wav.Decoder{})

	return r
}

func (f *FFmpeg) Transcode(workDir string, src *wav.PCM, bitrateKbps int) (*wav.PCM, error) {
	log := logger.OrDiscard(f.Logger).With(logger.Component("ffmpeg"), logger.Bitrate(bitrateKbps))
	start := time.Now()

	in := filepath.Join(workDir, "carrier.wav")
	out := filepath.Join(workDir, "carrier."+string(f.Codec))

	if err := wav.WritePCMFile(in, src); err != nil {
		return nil, fmt.Errorf("%w: writing input: %w", ErrTranscode, err)
	}

	args := []string{"-hide_banner", "-loglevel", "error", "-nostdin", "-y", "-i", in}
	args = append(args, f.Codec.encoderArgs(bitrateKbps, src.Format.BitDepth)...)
	args = append(args, out)

	stderr := new(bytes.Buffer)
	cmd := exec.Command(f.Binary, args...)
	cmd.Stderr = stderr

	log.Debug("encoding", slog.String("args", strings.Join(args, " ")))

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrTranscode, f.Binary, err, strings.TrimSpace(stderr.String()))
	}

	decoded, err := f.decode(out, src)
	if err != nil {
		return nil, err
	}

	log.Debug("transcoded", logger.Path(out), logger.Elapsed(start))

	return decoded, nil
}

func (f *FFmpeg) decode(path string, src *wav.PCM) (*wav.PCM, error) {
	dec, ok := f.Registry.Get(string(f.Codec))
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrTranscode, audio.ErrUnknownFormat, f.Codec)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
	}
	defer file.Close()

	s, err := dec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrTranscode, f.Codec, err)
	}
	defer s.Close()

	pcm, err := Conform(s, src.Format, src.Frames())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTranscode, err)
	}

	return pcm, nil
}
