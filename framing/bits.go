// SPDX-License-Identifier: EPL-2.0

package framing

// ToBits expands data to one 0/1 byte per bit, most significant bit first.
func ToBits(data []byte) []byte {
	bits := make([]byte, len(data)*8)
	for i, b := range data {
		for j := range 8 {
			bits[i*8+j] = (b >> (7 - j)) & 1
		}
	}

	return bits
}

// FromBits packs 0/1 values back into bytes, most significant bit first. Only
// the low bit of each element is used; a trailing partial byte is dropped.
func FromBits(bits []byte) []byte {
	data := make([]byte, len(bits)/8)
	for i := range data {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = b<<1 | bit&1
		}
		data[i] = b
	}

	return data
}
