// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/engine"
)

const (
	// smoothing is the per-frame step of the volume ramp:
	// actual += (target - actual) * smoothing. At 1/64 a full-scale change
	// settles within one percent in under 300 frames.
	smoothing = 1.0 / 64

	// stopEpsilon ends the stop fade. From any volume in [0,1] the ramp
	// reaches it in well under one device buffer.
	stopEpsilon = 0.001
)

// props are the control parameters of one voice. Two copies exist per
// channel: current, read by the device thread, and next, written by the
// control thread. Update promotes next into current under the device lock,
// so the mixer always sees a consistent snapshot.
type props struct {
	volume   float32
	pan      float32
	loop     bool
	virtual  bool
	position int
	gen      uint64
}

// sampleChannel plays a decoded sample buffer. It supplies the channel's
// mix/update/finish triple and lives in the channel record's Userdata until
// finish releases it.
type sampleChannel struct {
	soundID string
	sample  *audio.Sample // borrowed from the player's registry
	player  *Player

	current props
	next    props
	// lastGen tracks the seek generation already consumed from next. While
	// it matches, promotion carries the playhead forward instead of
	// rewinding it to a stale next.position.
	lastGen uint64

	actualVolume float32
}

// update runs on the control thread under the device lock.
func (s *sampleChannel) update(ch *engine.Channel) {
	state := ch.State()

	if state == engine.Initialize {
		ch.SetState(engine.Devirtualize)
		state = engine.Devirtualize
	}

	switch state {
	case engine.Devirtualize:
		if s.sample == nil {
			s.sample = s.player.sample(s.soundID)
		}
		if s.sample == nil {
			return
		}
		s.commit()
		s.actualVolume = s.current.volume
		if s.current.virtual {
			ch.SetState(engine.Virtualizing)
		} else {
			ch.SetState(engine.Playing)
		}
		if ch.StopRequested() {
			ch.SetState(engine.Stopping)
		}

	case engine.Playing, engine.Virtualizing:
		s.commit()
		if ch.StopRequested() {
			ch.SetState(engine.Stopping)
			return
		}
		if state == engine.Playing && s.current.virtual {
			ch.SetState(engine.Virtualizing)
		} else if state == engine.Virtualizing && !s.current.virtual {
			ch.SetState(engine.Playing)
		}

	case engine.Stopping:
		s.commit()
	}
}

// commit promotes next into current. Unless a seek bumped the generation,
// the playhead the mixer advanced wins over the stale next.position.
func (s *sampleChannel) commit() {
	if s.next.gen == s.lastGen {
		s.next.position = s.current.position
	} else {
		s.lastGen = s.next.gen
	}
	s.current = s.next
}

// mix renders frames stereo frames into buf. It runs on the device thread
// under the device lock: no allocation, and only current props are read.
func (s *sampleChannel) mix(ch *engine.Channel, buf []float32, frames int) {
	state := ch.State()
	switch state {
	case engine.Playing, engine.Stopping, engine.Virtualizing:
	default:
		return
	}
	if s.sample == nil {
		return
	}

	p := &s.current
	data := s.sample.Data
	channels := s.sample.Channels
	total := s.sample.Frames()
	pos := p.position
	av := s.actualVolume

	target := p.volume
	if state == engine.Stopping {
		target = 0
	}
	silent := state == engine.Virtualizing

	panLeft := float32(1)
	panRight := float32(1)
	if p.pan > 0 {
		panLeft = 1 - p.pan
	} else if p.pan < 0 {
		panRight = 1 + p.pan
	}

	for f := 0; f < frames; f++ {
		if pos >= total {
			if !p.loop {
				if state == engine.Stopping {
					ch.SetState(engine.Stopped)
				} else {
					ch.SetState(engine.Stopping)
				}
				break
			}
			pos = 0
		}

		av += (target - av) * smoothing
		if state == engine.Stopping && av <= stopEpsilon {
			av = 0
			ch.SetState(engine.Stopped)
			break
		}

		if !silent {
			var left, right float32
			if channels >= 2 {
				left = data[pos*channels]
				right = data[pos*channels+1]
			} else {
				left = data[pos]
				right = left
			}
			buf[f*2] = left * av * panLeft
			buf[f*2+1] = right * av * panRight
		}
		pos++
	}

	p.position = pos
	s.actualVolume = av
}

// finish runs on the control thread after the channel reached Stopped. It
// drops the sample borrow and marks the record terminal.
func (s *sampleChannel) finish(ch *engine.Channel) {
	s.sample = nil
	s.soundID = ""
	s.player = nil
	ch.Userdata = nil
	ch.SetState(engine.Last)
}
