// SPDX-License-Identifier: EPL-2.0

package lsb

// advanced splits the carrier into two stride-2 lanes: every even byte
// offset first, then every odd one. Bit i goes to the i-th offset of that
// order. With 16-bit little-endian samples the first half of the capacity
// lands in the low byte of each sample.
type advanced struct{}

// offset maps a bit index to its carrier byte for a carrier of n bytes.
func offset(i, n int) int {
	even := (n + 1) / 2
	if i < even {
		return 2 * i
	}

	return 2*(i-even) + 1
}

func (advanced) Embed(carrier, bits []byte) ([]byte, error) {
	if err := checkCapacity(carrier, bits); err != nil {
		return nil, err
	}

	out := make([]byte, len(carrier))
	copy(out, carrier)
	for i, bit := range bits {
		j := offset(i, len(out))
		out[j] = out[j]&0xfe | bit&1
	}

	return out, nil
}

func (advanced) Extract(carrier []byte) []byte {
	bits := make([]byte, len(carrier))
	for i := range bits {
		bits[i] = carrier[offset(i, len(carrier))] & 1
	}

	return bits
}
