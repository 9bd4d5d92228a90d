// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidStream is returned when the input carries no decodable MP3 frame.
var ErrInvalidStream = errors.New("invalid mp3 stream")
