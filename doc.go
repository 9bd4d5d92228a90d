// SPDX-License-Identifier: EPL-2.0

// Package audstego hides encrypted text in the least significant bits of
// uncompressed PCM WAV audio and measures how well it survives.
//
// A Pipeline ties the layers together:
//
//	encode: cipher.Encrypt -> framing.Frame -> lsb Embed
//	decode: lsb Extract -> framing.Unframe -> cipher.Decrypt
//
// and adds two evaluation entry points. Evaluate embeds a message, reads it
// back and scores the run with accuracy, PSNR and bit error rate.
// EvaluateRobustness pushes a stego carrier through a lossy codec at several
// bitrates and reports the bit error rate at each.
//
// # Quick start
//
//	key, err := cipher.KeyFile{Path: "aes_key.bin"}.LoadOrCreate()
//	if err != nil {
//	    return err
//	}
//	c, err := cipher.New(key)
//	if err != nil {
//	    return err
//	}
//
//	p := audstego.New(c, audstego.WithLogger(log))
//	if err := p.EncodeFile("in.wav", "out.wav", "meet at noon", lsb.Basic); err != nil {
//	    return err
//	}
//	msg, err := p.DecodeFile("out.wav", lsb.Basic)
//
// # Capacity
//
// Every carrier byte holds one bit. A message of n bytes becomes a blob of
// 16 + 16*(n/16 + 1) bytes plus the 3 byte delimiter, so a 16-bit mono
// carrier of one second at 44.1 kHz (88200 bytes) holds 11025 payload bytes,
// which is about 10990 bytes of message. Capacity computes the exact figure.
//
// # Errors
//
// Encode reports *lsb.CapacityError when the message does not fit. Decode
// returns framing.ErrDelimiterNotFound when the carrier holds no message and
// errors matching cipher.ErrDecryption when the payload cannot be decrypted.
// Recover folds both into a Recovery value. The evaluation functions never
// fail; they log and fall back to worst case scores.
package audstego
