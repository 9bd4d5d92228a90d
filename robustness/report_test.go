// SPDX-License-Identifier: EPL-2.0

package robustness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audstego/robustness"
)

func TestReport_Regressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []robustness.Point
		want   [][2]int // higher, lower kbps
	}{
		{
			name: "monotonic",
			points: []robustness.Point{
				{BitrateKbps: 320, BER: 0}, {BitrateKbps: 128, BER: 0.1},
				{BitrateKbps: 64, BER: 0.1}, {BitrateKbps: 32, BER: 0.5},
			},
		},
		{
			name: "dip",
			points: []robustness.Point{
				{BitrateKbps: 320, BER: 0}, {BitrateKbps: 128, BER: 0.4},
				{BitrateKbps: 64, BER: 0.2}, {BitrateKbps: 32, BER: 0.5},
			},
			want: [][2]int{{128, 64}},
		},
		{
			name: "unsorted input",
			points: []robustness.Point{
				{BitrateKbps: 32, BER: 0.1}, {BitrateKbps: 320, BER: 0.3},
			},
			want: [][2]int{{320, 32}},
		},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := robustness.Report{Points: tt.points}.Regressions()
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w[0], got[i].Higher.BitrateKbps)
				assert.Equal(t, w[1], got[i].Lower.BitrateKbps)
			}
		})
	}
}

func TestReport_Map(t *testing.T) {
	t.Parallel()

	r := robustness.Report{Points: []robustness.Point{{BitrateKbps: 64, BER: 0.25}, {BitrateKbps: 32, BER: 1}}}
	assert.Equal(t, map[int]float64{64: 0.25, 32: 1}, r.Map())
}
