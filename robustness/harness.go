// SPDX-License-Identifier: EPL-2.0

package robustness

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/logger"
	"github.com/ik5/audstego/metrics"
	"github.com/ik5/audstego/transcode"
)

// DefaultBitrates is the sweep used when none is given, in kbps.
var DefaultBitrates = []int{320, 128, 64, 32}

// DecodeFunc recovers the hidden message from a carrier.
type DecodeFunc func(carrier *wav.PCM) (string, error)

// Harness measures how a hidden message degrades when its carrier goes
// through a lossy channel at several bitrates.
type Harness struct {
	Transcoder transcode.Transcoder
	Decode     DecodeFunc
	// WorkDir is the parent of the per-bitrate scratch directories. Empty
	// means os.TempDir.
	WorkDir string
	Logger  *slog.Logger
}

// Run sweeps bitrates in the given order. A failing bitrate is recorded
// with BER 1 and the sweep moves on. Every scratch directory is removed
// before Run returns.
func (h *Harness) Run(message string, stego *wav.PCM, bitrates []int) Report {
	if len(bitrates) == 0 {
		bitrates = DefaultBitrates
	}

	report := Report{RunID: uuid.NewString()}
	log := logger.OrDiscard(h.Logger).With(logger.Component("robustness"), logger.RunID(report.RunID))
	start := time.Now()

	for _, kbps := range bitrates {
		p := h.point(report.RunID, message, stego, kbps)
		if p.Err != nil {
			log.Warn("bitrate failed", logger.Bitrate(kbps), logger.Error(p.Err))
		} else {
			log.Info("bitrate scored", logger.Bitrate(kbps), slog.Float64("ber", p.BER))
		}
		report.Points = append(report.Points, p)
	}

	for _, r := range report.Regressions() {
		log.Warn("ber improved at a lower bitrate",
			slog.Int("from_kbps", r.Higher.BitrateKbps), slog.Float64("from_ber", r.Higher.BER),
			slog.Int("to_kbps", r.Lower.BitrateKbps), slog.Float64("to_ber", r.Lower.BER))
	}

	log.Info("sweep finished", logger.Count("bitrates", len(bitrates)), logger.Elapsed(start))

	return report
}

func (h *Harness) point(runID, message string, stego *wav.PCM, kbps int) Point {
	p := Point{BitrateKbps: kbps, BER: 1}

	if h.Transcoder == nil || h.Decode == nil {
		p.Err = ErrNotConfigured
		return p
	}

	dir, err := os.MkdirTemp(h.WorkDir, fmt.Sprintf("audstego-%s-%dk-", runID[:8], kbps))
	if err != nil {
		p.Err = fmt.Errorf("creating scratch dir: %w", err)
		return p
	}
	defer os.RemoveAll(dir)

	degraded, err := h.Transcoder.Transcode(dir, stego, kbps)
	if err != nil {
		p.Err = err
		return p
	}
	if degraded == nil {
		p.Err = fmt.Errorf("%w: %w at %d kbps", transcode.ErrTranscode, ErrNoCarrier, kbps)
		return p
	}

	recovered, err := h.Decode(degraded)
	if err != nil {
		p.Err = fmt.Errorf("decoding at %d kbps: %w", kbps, err)
		return p
	}

	p.Recovered = recovered
	p.BER = metrics.BitErrorRate(message, recovered)

	return p
}
