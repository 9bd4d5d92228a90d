// SPDX-License-Identifier: EPL-2.0

package metrics

import "math/bits"

// BitErrors compares the bit expansions of two strings and returns the number
// of differing positions and the compared length. Each rune contributes
// max(8, bit length of the code point) bits, most significant first; the
// shorter expansion is padded with zero bits.
func BitErrors(original, recovered string) (errs, total int) {
	a := runeBits(original)
	b := runeBits(recovered)

	total = max(len(a), len(b))
	for i := range total {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			errs++
		}
	}

	return errs, total
}

// BitErrorRate is the fraction of mismatched bits in [0, 1]. An empty
// recovered message is a total failure (1.0) unless original is empty too.
func BitErrorRate(original, recovered string) float64 {
	if recovered == "" {
		if original == "" {
			return 0
		}
		return 1
	}

	errs, total := BitErrors(original, recovered)
	if total == 0 {
		return 0
	}

	return float64(errs) / float64(total)
}

func runeBits(s string) []byte {
	var out []byte
	for _, r := range s {
		width := max(8, bits.Len32(uint32(r)))
		for j := width - 1; j >= 0; j-- {
			out = append(out, byte(uint32(r)>>j)&1)
		}
	}

	return out
}
