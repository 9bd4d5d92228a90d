// SPDX-License-Identifier: EPL-2.0

package audstego

import (
	"errors"

	"github.com/ik5/audstego/formats/wav"
	"github.com/ik5/audstego/framing"
	"github.com/ik5/audstego/lsb"
)

// Outcome classifies a decode attempt.
type Outcome int

const (
	Recovered Outcome = iota
	// NoMessage means no payload delimiter was found.
	NoMessage
	// Undecryptable means a payload was found but did not decrypt.
	Undecryptable
)

func (o Outcome) String() string {
	switch o {
	case Recovered:
		return "recovered"
	case NoMessage:
		return "no message"
	case Undecryptable:
		return "undecryptable"
	}

	return "unknown"
}

// Recovery is the result of Recover. Message is empty unless Outcome is
// Recovered.
type Recovery struct {
	Message string
	Outcome Outcome
	Err     error
}

func (r Recovery) OK() bool { return r.Outcome == Recovered }

// Recover is Decode with the failure kinds folded into the result.
func (p *Pipeline) Recover(carrier *wav.PCM, alg lsb.Algorithm) Recovery {
	msg, err := p.Decode(carrier, alg)

	switch {
	case err == nil:
		return Recovery{Message: msg, Outcome: Recovered}
	case errors.Is(err, framing.ErrDelimiterNotFound), errors.Is(err, wav.ErrInvalidFormat):
		return Recovery{Outcome: NoMessage, Err: err}
	}

	// anything else is a payload that did not decrypt
	return Recovery{Outcome: Undecryptable, Err: err}
}
