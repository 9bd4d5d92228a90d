// SPDX-License-Identifier: EPL-2.0

package framing

import "bytes"

// Delimiter marks the end of a payload in the extracted byte stream. It is
// not escaped inside the payload.
var Delimiter = []byte("###")

// Frame returns blob followed by Delimiter.
func Frame(blob []byte) []byte {
	out := make([]byte, 0, len(blob)+len(Delimiter))
	out = append(out, blob...)

	return append(out, Delimiter...)
}

// Unframe returns the bytes before the first Delimiter.
func Unframe(data []byte) ([]byte, error) {
	i := bytes.Index(data, Delimiter)
	if i < 0 {
		return nil, ErrDelimiterNotFound
	}

	return data[:i], nil
}

// UnframeAligned is Unframe restricted to delimiter offsets p with
// p >= minLen and p%block == 0. Payloads of known block structure can then
// contain the delimiter bytes without being cut short.
func UnframeAligned(data []byte, block, minLen int) ([]byte, error) {
	if block <= 0 {
		block = 1
	}

	for off := 0; ; {
		i := bytes.Index(data[off:], Delimiter)
		if i < 0 {
			return nil, ErrDelimiterNotFound
		}

		p := off + i
		if p >= minLen && p%block == 0 {
			return data[:p], nil
		}
		off = p + 1
	}
}

// BitLen is the number of carrier bits needed for the framed blob.
func BitLen(blob []byte) int {
	return (len(blob) + len(Delimiter)) * 8
}
