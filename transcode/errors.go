// SPDX-License-Identifier: EPL-2.0

package transcode

import "errors"

var (
	// ErrTranscode wraps every failure of the external round trip.
	ErrTranscode    = errors.New("transcode failed")
	ErrUnknownCodec = errors.New("unknown codec")
)
