// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Sample is a fully decoded sound: interleaved float32 PCM in [-1,1] with a
// known channel count and sample rate. The mixing engine plays Samples
// directly; it never touches the encoded form.
type Sample struct {
	Data       []float32
	Channels   int
	SampleRate int
}

// Frames returns the number of frames (samples per channel) in the buffer.
func (s *Sample) Frames() int {
	if s == nil || s.Channels == 0 {
		return 0
	}
	return len(s.Data) / s.Channels
}

// Duration reports the playback length of the sample at its own rate.
func (s *Sample) Duration() time.Duration {
	if s == nil || s.SampleRate == 0 {
		return 0
	}
	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// Frame returns the interleaved values of frame i. The returned slice aliases
// the sample data.
func (s *Sample) Frame(i int) []float32 {
	return s.Data[i*s.Channels : (i+1)*s.Channels]
}

// Decoder turns an encoded audio stream into a decoded Sample.
type Decoder interface {
	Decode(r io.Reader) (*Sample, error)
}

// Registry maps format keys (e.g., "wav", "ogg", "mp3") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ForPath resolves a decoder from a file name's extension, lowercased and
// without the leading dot. "tone.WAV" resolves the "wav" decoder.
func (r *Registry) ForPath(path string) (Decoder, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil, false
	}
	return r.Get(ext)
}
