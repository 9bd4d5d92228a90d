// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// NewChannelAdapter reshapes src to the requested channel count.
//
// Mono targets are downmixed with MonoMixer. Otherwise output channel c is
// taken from source channel c modulo the source channel count, so a mono
// source is duplicated into every output channel.
func NewChannelAdapter(src Source, channels int) (Source, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	switch {
	case src.Channels() == channels:
		return src, nil
	case channels == 1:
		return NewMonoMixer(src), nil
	}

	return &channelMapper{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}, nil
}

type channelMapper struct {
	src      Source
	channels int
	tmp      []float32
}

func (m *channelMapper) SampleRate() int { return m.src.SampleRate() }
func (m *channelMapper) Channels() int   { return m.channels }
func (m *channelMapper) BufSize() int    { return m.src.BufSize() }
func (m *channelMapper) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *channelMapper) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	frames := len(dst) / m.channels
	if frames == 0 {
		return 0, nil
	}

	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	got := n / in
	for f := range got {
		for c := range m.channels {
			dst[f*m.channels+c] = m.tmp[f*in+c%in]
		}
	}

	return got * m.channels, err
}
