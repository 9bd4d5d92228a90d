// SPDX-License-Identifier: EPL-2.0

// Package cipher is the confidentiality layer of the stego pipeline.
//
// Messages are encrypted with AES-256 in CBC mode before they are hidden, so
// that the bits in the carrier look like noise. Every blob is
//
//	IV (16 bytes) || ciphertext (16*k bytes, k >= 1)
//
// with PKCS#7 padding inside the ciphertext. There is no authentication tag:
// a wrong key is detected only when the padding happens to be invalid.
//
// The key is passed to New explicitly. KeyFile loads it from disk, creating a
// random one on first use:
//
//	key, err := cipher.KeyFile{Path: "aes_key.bin"}.LoadOrCreate()
//	if err != nil {
//	    return err
//	}
//	c, err := cipher.New(key)
package cipher
