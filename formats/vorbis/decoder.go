// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/audio"
)

// Decoder decodes Ogg Vorbis streams into audio.Samples using
// github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Sample, error) {
	// oggvorbis already produces interleaved float32 in [-1,1], so a full
	// read maps straight onto a Sample.
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg vorbis: %w", err)
	}

	return &audio.Sample{
		Data:       data,
		Channels:   format.Channels,
		SampleRate: format.SampleRate,
	}, nil
}
