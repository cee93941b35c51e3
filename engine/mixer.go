// SPDX-License-Identifier: EPL-2.0

package engine

// mix is the device callback. It runs on the device thread while the device
// lock is held and must stay allocation free: the playing walk, the scratch
// chunking and the summation all work in storage that already exists.
//
// Channels outside {Playing, Stopping, Virtualizing} are skipped. Each
// audible channel renders into the scratch buffer in chunks of at most
// scratchFrames frames; the chunk is then summed into the output. Summation
// may exceed ±1.0 — clipping is the device's problem, per-channel volumes
// are the caller's.
//
// The walk follows the table's id order, not a map range: float summation
// is order-sensitive in its rounding, and two calls over the same playing
// set must produce bit-identical output.
func (e *Engine) mix(out []float32) {
	clear(out)
	totalFrames := len(out) / outputChannels

	for _, id := range e.playing.ids {
		ch := e.playing.m[id]
		switch ch.State() {
		case Playing, Stopping, Virtualizing:
		default:
			continue
		}

		served := 0
		for ch.Enabled() && served < totalFrames {
			chunk := min(e.scratchFrames, totalFrames-served)
			scratch := e.scratch[:chunk*outputChannels]
			clear(scratch)
			ch.mix(ch, scratch, chunk)

			base := served * outputChannels
			for i, v := range scratch {
				out[base+i] += v
			}
			served += chunk
		}
	}
}
