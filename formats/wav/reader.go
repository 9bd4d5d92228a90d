// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"
)

const formatTagPCM = 1

// ReadPCM parses a RIFF/WAVE stream and returns its format and the data
// chunk bytes verbatim. Chunks other than fmt and data are skipped.
func ReadPCM(r io.ReadSeeker) (*PCM, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatTagPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	f := Format{
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Channels:   int(dec.NumChans),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrMissingDataChunk
	}

	size, err := dataSize(r)
	if err != nil {
		return nil, fmt.Errorf("reading data chunk: %w", err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("reading data chunk: %w", err)
	}

	return &PCM{Format: f, Data: data[:len(data)-len(data)%f.BlockAlign()]}, nil
}

// dataSize returns the byte count of the data chunk r is positioned at,
// leaving r there. It uses the size the header declares, without the pad
// byte go-audio adds for odd sizes, capped at what the stream actually
// holds: streamed WAVs leave a placeholder such as 0xFFFFFFFF.
func dataSize(r io.ReadSeeker) (int64, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	var declared [4]byte
	if _, err := r.Seek(start-4, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if _, err := io.ReadFull(r, declared[:]); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return min(int64(binary.LittleEndian.Uint32(declared[:])), end-start), nil
}

// ReadPCMFile opens path and reads it with ReadPCM.
func ReadPCMFile(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	p, err := ReadPCM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}
