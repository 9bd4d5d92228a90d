// SPDX-License-Identifier: EPL-2.0

// Package framing turns an opaque blob into the bitstream that is written
// into a carrier, and back.
//
// A framed payload is the blob followed by the three ASCII bytes "###".
// The bitstream holds one bit per element, eight per byte, most significant
// bit first.
//
// Unframe cuts at the first delimiter, which breaks when the blob itself
// contains "###". Encrypted blobs are always 16+16k bytes long, so
// UnframeAligned(data, 16, 32) only accepts delimiter positions where such a
// blob could end.
package framing
