// SPDX-License-Identifier: EPL-2.0

package audstego

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/internal/logger"
	"github.com/ik5/audstego/lsb"
	"github.com/ik5/audstego/metrics"
	"github.com/ik5/audstego/robustness"
)

var ErrNoTranscoder = errors.New("no transcoder configured")

// Evaluate hides message in the carrier at in, writes it to out, reads it
// back and scores the run. Any failure is logged and yields
// metrics.Worst().
func (p *Pipeline) Evaluate(message string, alg lsb.Algorithm, in, out string) metrics.Triple {
	log := p.log.With(logger.Algorithm(alg.String()))

	if err := p.EncodeFile(in, out, message, alg); err != nil {
		log.Error("evaluation: encoding failed", logger.Error(err))
		return metrics.Worst()
	}

	stego, err := wav.ReadPCMFile(out)
	if err != nil {
		log.Error("evaluation: reading stego carrier", logger.Error(err))
		return metrics.Worst()
	}

	rec := p.Recover(stego, alg)
	if !rec.OK() {
		log.Error("evaluation: decoding failed", slog.String("outcome", rec.Outcome.String()), logger.Error(rec.Err))
		return metrics.Worst()
	}

	errs, total := metrics.BitErrors(message, rec.Message)
	t := metrics.Triple{
		Accuracy: metrics.Accuracy(message, rec.Message),
		PSNR:     metrics.PSNRFiles(log, in, out),
		BER:      metrics.BitErrorRate(message, rec.Message),
	}

	log.Info("evaluation",
		slog.String("original", message),
		slog.String("decoded", rec.Message),
		logger.Count("max_length", max(len([]rune(message)), len([]rune(rec.Message)))),
		logger.Count("bit_errors", errs),
		logger.Count("bits", total),
		slog.Float64("accuracy", t.Accuracy),
		slog.Float64("psnr_db", t.PSNR),
		slog.Float64("ber", t.BER))

	return t
}

// EvaluateRobustness runs the robustness sweep over the stego carrier at
// stegoPath. It fails only when the carrier cannot be read or no
// transcoder is configured; per-bitrate failures are in the report.
func (p *Pipeline) EvaluateRobustness(message string, alg lsb.Algorithm, stegoPath string, bitrates []int) (robustness.Report, error) {
	if p.transcoder == nil {
		return robustness.Report{}, ErrNoTranscoder
	}

	stego, err := wav.ReadPCMFile(stegoPath)
	if err != nil {
		return robustness.Report{}, fmt.Errorf("reading stego carrier: %w", err)
	}

	h := &robustness.Harness{
		Transcoder: p.transcoder,
		Decode: func(c *wav.PCM) (string, error) {
			return p.Decode(c, alg)
		},
		WorkDir: p.workDir,
		Logger:  p.log.With(logger.Algorithm(alg.String())),
	}

	start := time.Now()
	report := h.Run(message, stego, bitrates)
	p.log.Debug("robustness sweep done", logger.RunID(report.RunID), logger.Elapsed(start))

	return report, nil
}
