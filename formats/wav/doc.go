// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV carriers.
//
// A carrier is kept as a PCM value: the Format (sample rate, bit depth,
// channel count) and the raw bytes of the data chunk. Reading goes through
// github.com/go-audio/wav, which tolerates extra chunks such as LIST;
// writing emits a canonical 44-byte header built from the same Format, so
// a read/write cycle preserves every format parameter and every sample
// byte.
//
//	carrier, err := wav.ReadPCMFile("input/original_sample.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(carrier.Format, carrier.Frames())
//	err = wav.WritePCMFile("output/copy.wav", carrier)
//
// # Decoding to float samples
//
// Decoder implements audio.Decoder and NewSource wraps an in-memory
// carrier, both yielding interleaved float32 samples in [-1, 1]:
//
//	src := wav.NewSource(carrier)
//	samples, err := audio.ReadAll(src, 4096)
//
// # Supported layouts
//
//   - Integer PCM (format tag 1) only
//   - 8-bit unsigned, 16/24/32-bit signed little-endian
//   - Any channel count and sample rate
package wav
