// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds small decoded samples for tests: sines,
// constants and silence with exactly known values, so mixer output can be
// checked frame by frame.
package audiotest

import (
	"math"

	"github.com/ik5/audmix/audio"
)

// NewSample generates a sample of frames frames where waveform supplies the
// value for (frame, channel).
func NewSample(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.Sample {
	data := make([]float32, frames*channels)
	for f := range frames {
		for c := range channels {
			data[f*channels+c] = waveform(f, c)
		}
	}
	return &audio.Sample{
		Data:       data,
		Channels:   channels,
		SampleRate: sampleRate,
	}
}

// NewSilentSample generates all zeros.
func NewSilentSample(sampleRate, channels, frames int) *audio.Sample {
	return NewSample(sampleRate, channels, frames, func(frame, channel int) float32 {
		return 0
	})
}

// NewConstantSample generates the same value in every slot.
func NewConstantSample(sampleRate, channels, frames int, value float32) *audio.Sample {
	return NewSample(sampleRate, channels, frames, func(frame, channel int) float32 {
		return value
	})
}

// NewSineSample generates a sine wave at the given frequency, identical on
// every channel.
func NewSineSample(sampleRate, channels, frames int, frequency float64) *audio.Sample {
	return NewSample(sampleRate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}
