// SPDX-License-Identifier: EPL-2.0

// Package lsb hides a bitstream in the least significant bits of raw PCM
// sample bytes.
//
// Both strategies spend one carrier byte per bit and never touch any other
// bit of the byte, so sample rate, bit depth, channel count and frame count
// are unchanged. They differ only in placement:
//
//   - Basic writes bit i into byte i.
//   - Advanced fills the even byte offsets first and the odd ones after
//     that. A carrier written by one cannot be read by the other.
//
// Extraction is total: it returns one bit per carrier byte and leaves it to
// the framing layer to decide where the payload ends.
package lsb
