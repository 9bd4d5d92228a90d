// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ik5/audstego/audio"
	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/logger"
)

// PSNR compares two mono signals. Each is first scaled by its own peak
// absolute value (an all-zero signal is left as is), then both are cut to
// the shorter length. The reference range is 1.0. Identical signals give
// +Inf; empty input gives 0.
func PSNR(original, recovered []float64) float64 {
	n := min(len(original), len(recovered))
	if n == 0 {
		return 0
	}

	pa := peak(original)
	pb := peak(recovered)

	var sum float64
	for i := range n {
		d := original[i]/pa - recovered[i]/pb
		sum += d * d
	}

	mse := sum / float64(n)
	if mse == 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(1/mse)
}

func peak(x []float64) float64 {
	var p float64
	for _, v := range x {
		p = max(p, math.Abs(v))
	}
	if p == 0 {
		return 1
	}

	return p
}

// PSNRSources drains both sources, downmixed to mono, and scores them with
// PSNR. The sources are not closed.
func PSNRSources(a, b audio.Source) (float64, error) {
	if a.SampleRate() != b.SampleRate() {
		return 0, fmt.Errorf("%w: %d vs %d Hz", ErrSampleRateMismatch, a.SampleRate(), b.SampleRate())
	}

	x, err := monoSamples(a)
	if err != nil {
		return 0, err
	}
	y, err := monoSamples(b)
	if err != nil {
		return 0, err
	}

	return PSNR(x, y), nil
}

func monoSamples(src audio.Source) ([]float64, error) {
	samples, err := audio.ReadAll(audio.NewMonoMixer(src), 4096)
	if err != nil {
		return nil, fmt.Errorf("reading signal: %w", err)
	}

	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}

	return out, nil
}

// PSNRFiles scores two WAV files. Distortion scoring is best effort: any
// failure is logged and reported as 0.
func PSNRFiles(log *slog.Logger, originalPath, modifiedPath string) float64 {
	log = logger.OrDiscard(log)

	a, err := wav.ReadPCMFile(originalPath)
	if err != nil {
		log.Error("psnr: reading original", logger.Path(originalPath), logger.Error(err))
		return 0
	}
	b, err := wav.ReadPCMFile(modifiedPath)
	if err != nil {
		log.Error("psnr: reading modified", logger.Path(modifiedPath), logger.Error(err))
		return 0
	}

	psnr, err := PSNRSources(wav.NewSource(a), wav.NewSource(b))
	if err != nil {
		log.Error("psnr: comparing signals", logger.Error(err))
		return 0
	}

	log.Debug("psnr computed", slog.Float64("psnr_db", psnr))

	return psnr
}
