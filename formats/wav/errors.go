// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only integer PCM WAV supported")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	ErrMissingDataChunk    = errors.New("WAV data chunk not found")
	ErrInvalidFormat       = errors.New("invalid PCM format")
)
