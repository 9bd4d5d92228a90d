// SPDX-License-Identifier: EPL-2.0

package metrics

import "errors"

var ErrSampleRateMismatch = errors.New("sample rates differ")
