// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder decodes MP3 streams into audio.Samples using
// github.com/hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Sample, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}
	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.Sample, error) {
	// go-mp3 always emits 16-bit little-endian PCM, two channels
	// interleaved, regardless of the source layout.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 pcm: %w", err)
	}

	samples := len(raw) / 2
	out := make([]float32, samples)
	for i := range samples {
		low := uint16(raw[2*i])
		high := uint16(raw[2*i+1])
		out[i] = float32(int16(low|(high<<8))) / 32768.0
	}

	return &audio.Sample{
		Data:       out,
		Channels:   2,
		SampleRate: dec.SampleRate(),
	}, nil
}
