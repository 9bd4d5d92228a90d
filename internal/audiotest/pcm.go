// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// SinePCM16 renders a little-endian 16-bit interleaved sine tone at 0.6 of
// full scale, the same tone on every channel.
func SinePCM16(sampleRate, channels, frames int, frequency float64) []byte {
	data := make([]byte, frames*channels*2)
	for f := range frames {
		v := int16(0.6 * math.MaxInt16 * math.Sin(2*math.Pi*frequency*float64(f)/float64(sampleRate)))
		for c := range channels {
			binary.LittleEndian.PutUint16(data[(f*channels+c)*2:], uint16(v))
		}
	}

	return data
}

// NoiseBytes returns n deterministic pseudo-random bytes for the given seed.
func NoiseBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(r.UintN(256))
	}

	return data
}
