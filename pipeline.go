// SPDX-License-Identifier: EPL-2.0

package audstego

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audstego/cipher"
	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/framing"
	"github.com/ik5/audstego/internal/logger"
	"github.com/ik5/audstego/lsb"
	"github.com/ik5/audstego/transcode"
)

// Pipeline encodes and decodes hidden messages with one key.
type Pipeline struct {
	cipher     *cipher.Cipher
	log        *slog.Logger
	transcoder transcode.Transcoder
	workDir    string
}

func New(c *cipher.Cipher, opts ...Option) *Pipeline {
	p := &Pipeline{
		cipher: c,
		log:    logger.OrDiscard(nil),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Encode returns a copy of carrier with message hidden in it. The carrier
// format is unchanged.
func (p *Pipeline) Encode(carrier *wav.PCM, message string, alg lsb.Algorithm) (*wav.PCM, error) {
	blob, err := p.cipher.EncryptString(message)
	if err != nil {
		return nil, err
	}

	bits := framing.ToBits(framing.Frame(blob))

	data, err := alg.Strategy().Embed(carrier.Data, bits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}

	p.log.Debug("message embedded",
		logger.Algorithm(alg.String()),
		logger.Count("bits", len(bits)),
		logger.Count("capacity", carrier.Capacity()))

	return carrier.WithData(data), nil
}

// EncodeFile reads the carrier at in, hides message and writes the result to
// out, creating its directory if needed.
func (p *Pipeline) EncodeFile(in, out, message string, alg lsb.Algorithm) error {
	carrier, err := wav.ReadPCMFile(in)
	if err != nil {
		return fmt.Errorf("reading carrier: %w", err)
	}

	stego, err := p.Encode(carrier, message, alg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WritePCMFile(out, stego); err != nil {
		return fmt.Errorf("writing stego carrier: %w", err)
	}

	p.log.Info("encoding complete", logger.Algorithm(alg.String()), logger.Path(out))

	return nil
}

// Decode extracts and decrypts the message hidden in carrier. It returns
// framing.ErrDelimiterNotFound when there is none and an error matching
// cipher.ErrDecryption when the payload does not decrypt.
func (p *Pipeline) Decode(carrier *wav.PCM, alg lsb.Algorithm) (string, error) {
	if carrier == nil {
		return "", fmt.Errorf("%w: no carrier", wav.ErrInvalidFormat)
	}

	data := framing.FromBits(alg.Strategy().Extract(carrier.Data))

	blob, err := framing.UnframeAligned(data, cipher.BlockSize, cipher.MinBlobSize)
	if err != nil {
		return "", err
	}

	return p.cipher.Decrypt(blob)
}

func (p *Pipeline) DecodeFile(path string, alg lsb.Algorithm) (string, error) {
	carrier, err := wav.ReadPCMFile(path)
	if err != nil {
		return "", fmt.Errorf("reading carrier: %w", err)
	}

	return p.Decode(carrier, alg)
}

// Capacity is the longest message, in bytes, that fits in carrier, or -1
// when not even an empty message fits.
func Capacity(carrier *wav.PCM) int {
	blob := carrier.Capacity()/8 - len(framing.Delimiter)
	if blob < cipher.MinBlobSize {
		return -1
	}

	blocks := (blob - cipher.IVSize) / cipher.BlockSize

	return blocks*cipher.BlockSize - 1
}
