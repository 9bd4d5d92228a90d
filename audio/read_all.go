// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a single interleaved buffer, reading bufferSize
// samples at a time. The source is not closed.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	return drain(src.Channels(), bufferSize, src.ReadSamples)
}

// ReadAllInts is ReadAll for the integer side of an IntSource.
func ReadAllInts(src IntSource, bufferSize int) ([]int, error) {
	return drain(src.Channels(), bufferSize, src.ReadInts)
}

func drain[T float32 | int](channels, bufferSize int, read func([]T) (int, error)) ([]T, error) {
	if bufferSize <= 0 {
		return nil, ErrEmptyBufferSize
	}

	// Keep reads frame aligned so channel-aware stages accept the buffer.
	if channels > 1 && bufferSize%channels != 0 {
		bufferSize += channels - bufferSize%channels
	}

	var out []T
	buf := make([]T, bufferSize)

	for {
		n, err := read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		// Guard against sources that keep returning (0, nil) after the end.
		if n == 0 {
			break
		}
	}

	return out, nil
}
