// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"fmt"
	"math"
)

// Triple is the result of one evaluation run.
type Triple struct {
	Accuracy float64 // percent, [0, 100]
	PSNR     float64 // dB, [0, +Inf]
	BER      float64 // fraction, [0, 1]
}

// Worst is reported when an evaluation could not complete.
func Worst() Triple {
	return Triple{Accuracy: 0, PSNR: 0, BER: 1}
}

func (t Triple) String() string {
	psnr := fmt.Sprintf("%.2f dB", t.PSNR)
	if math.IsInf(t.PSNR, 1) {
		psnr = "inf dB"
	}

	return fmt.Sprintf("accuracy %.2f%%, PSNR %s, BER %.6f", t.Accuracy, psnr, t.BER)
}
