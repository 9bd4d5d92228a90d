// SPDX-License-Identifier: EPL-2.0

package audstego

import (
	"log/slog"

	"github.com/ik5/audstego/transcode"
)

type Option func(*Pipeline)

// WithLogger sets the logger. Without it the pipeline is silent.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithTranscoder sets the lossy channel used by EvaluateRobustness.
func WithTranscoder(t transcode.Transcoder) Option {
	return func(p *Pipeline) {
		p.transcoder = t
	}
}

// WithWorkDir sets the parent directory for robustness scratch files.
func WithWorkDir(dir string) Option {
	return func(p *Pipeline) {
		p.workDir = dir
	}
}
