// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is matched by every *CapacityError.
	ErrCapacity         = errors.New("payload exceeds carrier capacity")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// CapacityError reports a bitstream longer than the carrier.
type CapacityError struct {
	Needed    int // bits
	Available int // carrier bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: need %d bits, carrier holds %d", ErrCapacity, e.Needed, e.Available)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }
