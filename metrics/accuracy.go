// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Accuracy scores recovered against original as a percentage in [0, 100].
// Both strings are NFC normalised and right padded with spaces to the same
// rune length L, then scored as 100 * (L - d) / L where d is the Levenshtein
// distance. Two empty strings score 100.
func Accuracy(original, recovered string) float64 {
	a := norm.NFC.String(original)
	b := norm.NFC.String(recovered)

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	l := max(la, lb)
	if l == 0 {
		return 100
	}

	a += strings.Repeat(" ", l-la)
	b += strings.Repeat(" ", l-lb)

	d := levenshtein.ComputeDistance(a, b)
	score := 100 * float64(l-d) / float64(l)

	return min(max(score, 0), 100)
}
