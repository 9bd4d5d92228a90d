// SPDX-License-Identifier: EPL-2.0

// Package metrics scores how well a hidden message and its carrier survived.
//
// Three independent measures are provided:
//
//   - Accuracy: normalised Levenshtein similarity of the messages, 0-100.
//   - PSNR: peak signal to noise ratio of the carriers in dB, +Inf when the
//     signals match.
//   - BitErrorRate: fraction of differing bits between the messages.
//
// None of them mutate their input. PSNRFiles never fails; it logs and
// returns 0 instead.
package metrics
