// SPDX-License-Identifier: EPL-2.0

package robustness

import "errors"

var (
	ErrNotConfigured = errors.New("harness needs a transcoder and a decoder")
	ErrNoCarrier     = errors.New("transcoder returned no carrier")
)
