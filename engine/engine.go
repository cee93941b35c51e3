// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"

	"github.com/ik5/audmix/device"
)

const (
	// SampleRate is the fixed output rate. Sounds must be converted to it
	// before playback; the mixer never resamples.
	SampleRate = 44100
	// BufferFrames is the device buffer size in frames. One frame is two
	// float32 values, 8 bytes on the wire.
	BufferFrames = 1024

	outputChannels = 2
)

// Engine owns the device, the scratch buffer and the two channel tables.
//
// New channels land in pending, which only the control thread touches.
// Update moves them into playing under the device lock; the device thread
// walks playing only. That keeps the callback free of allocation and keeps
// table growth off the audio thread except for the bounded move-all.
type Engine struct {
	dev  device.Device
	spec device.Spec

	scratch       []float32
	scratchFrames int

	pending *Table
	playing *Table

	// nextID is control-thread-only, like the tables.
	nextID ChannelID
}

// New opens a device through open and returns a running engine. The device
// starts unpaused: the callback begins pulling silence immediately. Fails
// with a wrapped device.ErrDeviceUnavailable when no output can be opened.
func New(open device.Opener) (*Engine, error) {
	e := &Engine{
		scratch:       make([]float32, BufferFrames*outputChannels),
		scratchFrames: BufferFrames,
		pending:       NewTable(),
		playing:       NewTable(),
		nextID:        1,
	}
	e.spec = device.Spec{
		SampleRate:   SampleRate,
		Channels:     outputChannels,
		BufferFrames: BufferFrames,
		Callback:     e.mix,
	}

	dev, err := open(e.spec)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	e.dev = dev
	return e, nil
}

// Device exposes the backend, mainly so tests and offline rendering can
// drive a null device's Step.
func (e *Engine) Device() device.Device {
	return e.dev
}

// Spec returns the device spec the engine opened with.
func (e *Engine) Spec() device.Spec {
	return e.spec
}

// ChannelInit registers a new channel in pending and returns its id. It
// runs on the control thread and takes no lock: the device thread never
// sees pending. The channel starts enabled in the Initialize state and is
// not mixed until the next Update promotes it.
func (e *Engine) ChannelInit(mix MixFunc, update, finish TickFunc, userdata any) ChannelID {
	id := e.nextID
	e.nextID++

	ch := &Channel{
		id:       id,
		mix:      mix,
		update:   update,
		finish:   finish,
		Userdata: userdata,
	}
	ch.SetState(Initialize)
	ch.SetEnabled(true)
	e.pending.Set(id, ch)

	return id
}

// Get looks id up in playing first, then pending.
func (e *Engine) Get(id ChannelID) (*Channel, bool) {
	if ch, ok := e.playing.Get(id); ok {
		return ch, true
	}
	return e.pending.Get(id)
}

// Lock excludes the device callback until Unlock.
func (e *Engine) Lock() { e.dev.Lock() }

func (e *Engine) Unlock() { e.dev.Unlock() }

// Update is the once-per-frame control tick. Under the device lock it
// promotes every pending channel to playing, runs each playing channel's
// update callback in table order, and finishes and removes channels that
// reached Stopped. Pending storage is released outside the lock so the next
// batch of inserts grows a fresh table on the control thread.
func (e *Engine) Update() {
	e.dev.Lock()
	e.playing.AddAll(e.pending)
	e.playing.Each(func(ch *Channel) bool {
		if ch.update != nil {
			ch.update(ch)
		}
		if ch.State() == Stopped {
			if ch.finish != nil {
				ch.finish(ch)
			}
			e.playing.Delete(ch.ID())
		}
		return true
	})
	e.dev.Unlock()
	e.pending.Free()
}

// Stop requests a stop on the channel, wherever it lives. Idempotent; a
// dead id is a no-op.
func (e *Engine) Stop(id ChannelID) {
	if ch, ok := e.Get(id); ok {
		ch.RequestStop()
	}
}

// StopAll requests a stop on every channel in both tables.
func (e *Engine) StopAll() {
	e.playing.Each(func(ch *Channel) bool {
		ch.RequestStop()
		return true
	})
	e.pending.Each(func(ch *Channel) bool {
		ch.RequestStop()
		return true
	})
}

// Each walks every channel, playing first and then pending, stopping when
// fn returns false. Control thread only; take Lock first when the walk
// mutates state the mixer reads.
func (e *Engine) Each(fn func(ch *Channel) bool) {
	stopped := false
	e.playing.Each(func(ch *Channel) bool {
		if !fn(ch) {
			stopped = true
			return false
		}
		return true
	})
	if stopped {
		return
	}
	e.pending.Each(fn)
}

// Pause suspends device callbacks.
func (e *Engine) Pause() { e.dev.Pause() }

// Resume re-enables device callbacks.
func (e *Engine) Resume() { e.dev.Resume() }

// Halt pauses and closes the device. Close errors are swallowed; the device
// is terminal either way.
func (e *Engine) Halt() {
	if e.dev == nil {
		return
	}
	e.dev.Pause()
	_ = e.dev.Close()
}

// Free halts the device and releases engine storage. Channels that never
// reached their finish callback keep whatever Userdata they hold; draining
// them first is the caller's job.
func (e *Engine) Free() {
	e.Halt()
	e.scratch = nil
	e.playing.Free()
	e.pending.Free()
}
