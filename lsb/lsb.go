// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"fmt"
	"strings"
)

// Strategy hides a bitstream in carrier bytes and reads it back. Each bit
// costs one carrier byte.
type Strategy interface {
	// Embed returns a copy of carrier with bits written into it.
	Embed(carrier, bits []byte) ([]byte, error)
	// Extract returns one bit per carrier byte in embedding order.
	Extract(carrier []byte) []byte
}

// Algorithm selects an embedding strategy.
type Algorithm int

const (
	Basic Algorithm = iota + 1
	Advanced
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{Basic, Advanced}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "1":
		return Basic, nil
	case "advanced", "enhanced", "2":
		return Advanced, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) String() string {
	switch a {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Name is the human readable label shown by the CLI.
func (a Algorithm) Name() string {
	switch a {
	case Basic:
		return "Basic LSB Steganography with AES"
	case Advanced:
		return "Advanced LSB Steganography with AES"
	}

	return a.String()
}

// Strategy returns the codec for a. Unknown values fall back to Basic.
func (a Algorithm) Strategy() Strategy {
	if a == Advanced {
		return advanced{}
	}

	return basic{}
}

// Valid reports whether a is one of Algorithms.
func (a Algorithm) Valid() bool {
	return a == Basic || a == Advanced
}

func checkCapacity(carrier, bits []byte) error {
	if len(bits) > len(carrier) {
		return &CapacityError{Needed: len(bits), Available: len(carrier)}
	}

	return nil
}
