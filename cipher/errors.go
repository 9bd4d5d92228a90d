// SPDX-License-Identifier: EPL-2.0

package cipher

import "errors"

var (
	ErrInvalidKeySize = errors.New("key must be 32 bytes")
	ErrInvalidKeyFile = errors.New("key file does not hold a 32-byte key")

	// ErrDecryption is wrapped by every Decrypt failure.
	ErrDecryption     = errors.New("decryption failed")
	ErrBlobTooShort   = errors.New("blob shorter than iv plus one block")
	ErrBlobNotAligned = errors.New("ciphertext is not a multiple of the block size")
	ErrInvalidPadding = errors.New("invalid PKCS#7 padding")
)
