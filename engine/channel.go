// SPDX-License-Identifier: EPL-2.0

package engine

import "sync/atomic"

// ChannelID identifies a channel for the lifetime of an Engine. Ids are
// handed out strictly increasing and never reused; zero is reserved for
// "no channel".
type ChannelID uint64

const InvalidChannel ChannelID = 0

// State is a channel's position in its lifecycle. The main path only moves
// forward: Initialize → Devirtualize → Playing → Stopping → Stopped → Last.
// Virtualizing sits beside Playing: the channel keeps ticking and its mix
// callback keeps running, but it contributes silence.
type State int32

const (
	Initialize State = iota
	Devirtualize
	Playing
	Stopping
	Stopped
	Last
	Virtualizing
)

func (s State) String() string {
	switch s {
	case Initialize:
		return "initialize"
	case Devirtualize:
		return "devirtualize"
	case Playing:
		return "playing"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	case Last:
		return "last"
	case Virtualizing:
		return "virtualizing"
	default:
		return "unknown"
	}
}

// MixFunc renders up to frames stereo frames into buf (len = frames*2,
// pre-zeroed). It runs on the device thread under the device lock and must
// not allocate or block.
type MixFunc func(ch *Channel, buf []float32, frames int)

// TickFunc runs on the control thread under the device lock, once per
// Engine.Update.
type TickFunc func(ch *Channel)

// Channel is one voice: lifecycle state plus the mix/update/finish
// capability triple a concrete source supplies. Userdata belongs to whoever
// created the channel and is released by its finish callback.
//
// state, enabled and stopRequested are single-word atomics: the control
// thread flips them without the device lock and a stale read on the device
// thread only delays the effect by one buffer.
type Channel struct {
	id            ChannelID
	state         atomic.Int32
	enabled       atomic.Bool
	stopRequested atomic.Bool

	mix    MixFunc
	update TickFunc
	finish TickFunc

	Userdata any
}

func (ch *Channel) ID() ChannelID { return ch.id }

func (ch *Channel) State() State { return State(ch.state.Load()) }

func (ch *Channel) SetState(s State) { ch.state.Store(int32(s)) }

// RequestStop asks the channel to wind down. The flag is monotonic: once
// set it stays set until the channel is finished.
func (ch *Channel) RequestStop() { ch.stopRequested.Store(true) }

func (ch *Channel) StopRequested() bool { return ch.stopRequested.Load() }

// SetEnabled(false) silences the channel within one buffer without touching
// its state machine.
func (ch *Channel) SetEnabled(enabled bool) { ch.enabled.Store(enabled) }

func (ch *Channel) Enabled() bool { return ch.enabled.Load() }
