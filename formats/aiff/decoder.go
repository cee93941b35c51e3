// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes AIFF files into audio.Samples using go-audio/aiff.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Sample, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return decodeAll(dec, format)
}

func decodeAll(dec aiffReader, format *goaudio.Format) (*audio.Sample, error) {
	var out []float32
	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if n == 0 {
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("decoding aiff: %w", err)
			}
			break
		}
		for _, v := range buf.Data[:n] {
			out = append(out, float32(v)/32768.0)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff: %w", err)
		}
	}

	return &audio.Sample{
		Data:       out,
		Channels:   format.NumChannels,
		SampleRate: format.SampleRate,
	}, nil
}
