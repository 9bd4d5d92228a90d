// SPDX-License-Identifier: EPL-2.0

package logger

import "errors"

var ErrUnknownFormat = errors.New("unknown log format")
