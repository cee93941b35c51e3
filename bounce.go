// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/engine"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/utils"
)

// RenderWAV renders the next frames of output offline and writes them as a
// 16-bit PCM stereo WAV. It only works on a player opened with
// device.NullOpener: the null device lets this loop drive playback time
// instead of a sound card. One Update runs per device buffer, standing in
// for the host's frame tick.
func (p *Player) RenderWAV(w io.Writer, frames int) error {
	null, ok := p.engine.Device().(*device.Null)
	if !ok {
		return ErrNotHeadless
	}
	if frames < 0 {
		frames = 0
	}

	pcm := make([]int16, 0, frames*2)
	for rendered := 0; rendered < frames; {
		p.Update()
		buf := null.Step()
		n := min(engine.BufferFrames, frames-rendered)
		for _, v := range buf[:n*2] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}
		rendered += n
	}

	if err := wav.WritePCM16(w, engine.SampleRate, 2, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
