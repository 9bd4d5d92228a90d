// SPDX-License-Identifier: EPL-2.0

package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"fmt"
	"strings"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// BlockSize is the AES block size in bytes.
	BlockSize = aes.BlockSize
	// IVSize is the CBC initialisation vector length, one AES block.
	IVSize = aes.BlockSize
	// MinBlobSize is the shortest blob Encrypt can produce.
	MinBlobSize = IVSize + BlockSize
)

// Cipher encrypts payloads with AES-256-CBC and PKCS#7 padding. Blobs are
// laid out as IV followed by ciphertext. A Cipher is safe for concurrent use.
type Cipher struct {
	block gocipher.Block
}

func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Cipher{block: block}, nil
}

// Encrypt returns IV || AES-CBC(PKCS7(plaintext)). A fresh random IV is drawn
// on every call.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pad(plaintext, aes.BlockSize)

	blob := make([]byte, IVSize+len(padded))
	iv := blob[:IVSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generating iv: %w", err)
	}

	gocipher.NewCBCEncrypter(c.block, iv).CryptBlocks(blob[IVSize:], padded)

	return blob, nil
}

func (c *Cipher) EncryptString(plaintext string) ([]byte, error) {
	return c.Encrypt([]byte(plaintext))
}

// Decrypt reverses Encrypt. Invalid UTF-8 in the recovered plaintext is
// dropped rather than reported.
func (c *Cipher) Decrypt(blob []byte) (string, error) {
	if len(blob) < MinBlobSize {
		return "", fmt.Errorf("%w: %w (%d bytes)", ErrDecryption, ErrBlobTooShort, len(blob))
	}

	iv, body := blob[:IVSize], blob[IVSize:]
	if len(body)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %w (%d bytes)", ErrDecryption, ErrBlobNotAligned, len(body))
	}

	plain := make([]byte, len(body))
	gocipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plain, body)

	plain, err := unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return strings.ToValidUTF8(string(plain), ""), nil
}

// CiphertextLen is the blob length Encrypt produces for n plaintext bytes.
func CiphertextLen(n int) int {
	return IVSize + (n/aes.BlockSize+1)*aes.BlockSize
}

func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize

	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}

	return out
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
