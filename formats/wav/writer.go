// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const headerSize = 44

// WritePCM writes p as a canonical RIFF/WAVE file: a 44-byte header built
// from p.Format followed by p.Data untouched.
func WritePCM(w io.Writer, p *PCM) error {
	if err := p.Format.Validate(); err != nil {
		return err
	}

	dataSize := uint32(len(p.Data))
	pad := dataSize % 2 // RIFF chunks are word aligned

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize+pad)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatTagPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(p.Format.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(p.Format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(p.Format.SampleRate*p.Format.BlockAlign()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(p.Format.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(p.Format.BitDepth))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(p.Data); err != nil {
		return fmt.Errorf("%w", err)
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WritePCMFile creates (or truncates) path and writes p into it.
func WritePCMFile(path string, p *PCM) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	return WritePCM(f, p)
}
