// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
)

// Decoder decodes PCM WAV files into audio.Samples using go-audio/wav.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Sample, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	scale, ok := bitDepthScale(int(dec.BitDepth))
	if !ok {
		return nil, ErrUnsupportedBitDepth
	}

	out := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float32(v) / scale
	}

	return &audio.Sample{
		Data:       out,
		Channels:   buf.Format.NumChannels,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// bitDepthScale maps a PCM bit depth to the divisor that normalizes its
// integer samples into [-1,1].
func bitDepthScale(bits int) (float32, bool) {
	switch bits {
	case 8:
		return 128.0, true
	case 16:
		return 32768.0, true
	case 24:
		return 8388608.0, true
	case 32:
		return 2147483648.0, true
	default:
		return 0, false
	}
}
