package mp3

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// fakeMP3 feeds canned 16-bit LE PCM through the mp3Reader interface.
type fakeMP3 struct {
	data []byte
	pos  int
	rate int
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func pcm16LE(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(uint16(s))
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}

func TestDecodeAll_ConvertsPCM(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 123}
	dec := &fakeMP3{data: pcm16LE(samples...), rate: 44100}

	sample, err := decodeAll(dec)
	if err != nil {
		t.Fatalf("decodeAll() failed: %v", err)
	}

	if sample.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", sample.SampleRate)
	}
	if sample.Channels != 2 {
		t.Errorf("Channels = %d, want 2 (go-mp3 always emits stereo)", sample.Channels)
	}
	if len(sample.Data) != len(samples) {
		t.Fatalf("decoded %d values, want %d", len(sample.Data), len(samples))
	}
	for i, want := range samples {
		got := sample.Data[i]
		if math.Abs(float64(got)-float64(want)/32768.0) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got, float64(want)/32768.0)
		}
	}
}

func TestDecodeAll_Empty(t *testing.T) {
	t.Parallel()

	sample, err := decodeAll(&fakeMP3{rate: 48000})
	if err != nil {
		t.Fatalf("decodeAll() failed: %v", err)
	}
	if len(sample.Data) != 0 {
		t.Errorf("decoded %d values from empty stream, want 0", len(sample.Data))
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3 stream at all"))); err == nil {
		t.Error("Decode() accepted garbage input")
	}
}
