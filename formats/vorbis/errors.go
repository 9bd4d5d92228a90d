// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream is returned when the input is not an Ogg Vorbis stream.
var ErrInvalidStream = errors.New("invalid ogg vorbis stream")
