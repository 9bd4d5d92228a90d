// SPDX-License-Identifier: EPL-2.0

package lsb

// basic writes bit i into the LSB of carrier byte i.
type basic struct{}

func (basic) Embed(carrier, bits []byte) ([]byte, error) {
	if err := checkCapacity(carrier, bits); err != nil {
		return nil, err
	}

	out := make([]byte, len(carrier))
	copy(out, carrier)
	for i, bit := range bits {
		out[i] = out[i]&0xfe | bit&1
	}

	return out, nil
}

func (basic) Extract(carrier []byte) []byte {
	bits := make([]byte, len(carrier))
	for i, b := range carrier {
		bits[i] = b & 1
	}

	return bits
}
