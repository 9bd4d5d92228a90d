// SPDX-License-Identifier: EPL-2.0

package robustness

import (
	"cmp"
	"slices"
)

// Point is the outcome at one bitrate.
type Point struct {
	BitrateKbps int
	BER         float64
	Recovered   string
	Err         error // nil when the message was decoded
}

type Report struct {
	RunID  string
	Points []Point
}

// Map returns bitrate -> BER.
func (r Report) Map() map[int]float64 {
	m := make(map[int]float64, len(r.Points))
	for _, p := range r.Points {
		m[p.BitrateKbps] = p.BER
	}

	return m
}

// Regression is a pair of adjacent bitrates where the lower one recovered
// the message better than the higher one.
type Regression struct {
	Higher Point
	Lower  Point
}

// Regressions checks that BER does not decrease as bitrate decreases. Lossy
// encoders are not deterministic, so violations are reported, not enforced.
func (r Report) Regressions() []Regression {
	points := slices.Clone(r.Points)
	slices.SortStableFunc(points, func(a, b Point) int {
		return cmp.Compare(b.BitrateKbps, a.BitrateKbps)
	})

	var out []Regression
	for i := 1; i < len(points); i++ {
		if points[i].BER < points[i-1].BER {
			out = append(out, Regression{Higher: points[i-1], Lower: points[i]})
		}
	}

	return out
}

// Failed counts the points that ended in an error.
func (r Report) Failed() int {
	n := 0
	for _, p := range r.Points {
		if p.Err != nil {
			n++
		}
	}

	return n
}
