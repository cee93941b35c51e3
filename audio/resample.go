// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audmix/utils"

// Resample converts s to dstRate using Catmull-Rom cubic interpolation and
// returns a new Sample; s is returned unchanged when it already matches.
// A one-pole low-pass pass is applied first when downsampling to tame
// aliasing. This is a one-shot, load-time conversion: the mixer expects every
// sound to match the device rate before playback starts.
func Resample(s *Sample, dstRate int) (*Sample, error) {
	if s.Channels < 1 {
		return nil, ErrBadChannelCount
	}
	if s.Frames() == 0 {
		return nil, ErrEmptySample
	}
	if s.SampleRate == dstRate {
		return s, nil
	}

	channels := s.Channels
	srcFrames := s.Frames()
	ratio := float64(s.SampleRate) / float64(dstRate)
	dstFrames := int(float64(srcFrames) / ratio)
	if dstFrames < 1 {
		dstFrames = 1
	}

	src := s.Data
	if ratio > 1.0 {
		src = lowPass(s, 0.5)
	}

	// frameAt clamps at the edges so the cubic window never reads outside
	// the buffer.
	frameAt := func(i, c int) float32 {
		if i < 0 {
			i = 0
		}
		if i >= srcFrames {
			i = srcFrames - 1
		}
		return src[i*channels+c]
	}

	out := make([]float32, dstFrames*channels)
	pos := 0.0
	for f := range dstFrames {
		i := int(pos)
		alpha := float32(pos - float64(i))
		for c := range channels {
			y0 := frameAt(i-1, c)
			y1 := frameAt(i, c)
			y2 := frameAt(i+1, c)
			y3 := frameAt(i+2, c)
			out[f*channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}
		pos += ratio
	}

	return &Sample{
		Data:       out,
		Channels:   channels,
		SampleRate: dstRate,
	}, nil
}

// lowPass runs a one-pole low-pass filter over each channel and returns the
// filtered copy. y[n] = alpha * x[n] + (1-alpha) * y[n-1]
func lowPass(s *Sample, alpha float32) []float32 {
	channels := s.Channels
	frames := s.Frames()
	out := make([]float32, len(s.Data))

	state := make([]float32, channels)
	copy(state, s.Data[:channels])

	for f := range frames {
		for c := range channels {
			v := alpha*s.Data[f*channels+c] + (1-alpha)*state[c]
			state[c] = v
			out[f*channels+c] = v
		}
	}
	return out
}
