// SPDX-License-Identifier: EPL-2.0

package framing

import "errors"

// ErrDelimiterNotFound means the extracted stream carries no hidden payload,
// or the payload was truncated.
var ErrDelimiterNotFound = errors.New("payload delimiter not found")
