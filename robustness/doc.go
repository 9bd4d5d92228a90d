// SPDX-License-Identifier: EPL-2.0

// Package robustness sweeps a stego carrier through a lossy channel at a
// list of bitrates and records the bit error rate of the recovered message
// at each one.
//
// Each bitrate runs in its own scratch directory, created under
// Harness.WorkDir and removed on every exit path. A failure at one bitrate
// is stored on its Point with BER 1 and never stops the sweep.
package robustness
