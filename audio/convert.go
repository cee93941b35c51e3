// SPDX-License-Identifier: EPL-2.0

package audio

// DownmixStereo folds samples with more than two channels down to stereo and
// returns a new Sample. Mono and stereo samples pass through untouched; the
// mixer duplicates mono into both output channels itself.
//
// Even source channels are averaged into the left output, odd ones into the
// right, so a quad (FL FR RL RR) layout folds front/rear pairs together.
func DownmixStereo(s *Sample) (*Sample, error) {
	if s.Channels < 1 {
		return nil, ErrBadChannelCount
	}
	if s.Channels <= 2 {
		return s, nil
	}

	channels := s.Channels
	frames := s.Frames()
	out := make([]float32, frames*2)

	left := float32(0)
	right := float32(0)
	// Per-side counts differ when the channel count is odd.
	nLeft := (channels + 1) / 2
	nRight := channels / 2

	for f := range frames {
		left, right = 0, 0
		base := f * channels
		for c := range channels {
			if c%2 == 0 {
				left += s.Data[base+c]
			} else {
				right += s.Data[base+c]
			}
		}
		out[f*2] = left / float32(nLeft)
		out[f*2+1] = right / float32(nRight)
	}

	return &Sample{
		Data:       out,
		Channels:   2,
		SampleRate: s.SampleRate,
	}, nil
}
