// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// otoDevice drives a real output through ebitengine/oto. Oto pulls bytes
// from an io.Reader on its own thread; Read regenerates audio through the
// spec callback one buffer at a time and carries the remainder between
// pulls, so the callback always sees exactly BufferFrames frames.
type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
	spec   Spec

	mu sync.Mutex

	frames []float32 // one callback buffer, BufferFrames*Channels values
	bytes  []byte    // frames encoded as float32-LE
	off    int       // consumed prefix of bytes
}

// OpenOto opens the default output device via oto. The returned device
// starts unpaused.
func OpenOto(spec Spec) (Device, error) {
	if spec.SampleRate <= 0 || spec.Channels <= 0 || spec.BufferFrames <= 0 || spec.Callback == nil {
		return nil, ErrBadSpec
	}

	op := &oto.NewContextOptions{
		SampleRate:   spec.SampleRate,
		ChannelCount: spec.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(spec.BufferFrames) * time.Second / time.Duration(spec.SampleRate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	<-ready

	samples := spec.BufferFrames * spec.Channels
	d := &otoDevice{
		ctx:    ctx,
		spec:   spec,
		frames: make([]float32, samples),
		bytes:  make([]byte, samples*4),
	}
	d.off = len(d.bytes) // force a render on first pull
	d.player = ctx.NewPlayer(d)
	d.player.Play()

	return d, nil
}

// Read is the oto pull path. It runs on oto's playback thread and holds the
// device lock for its whole duration, mirroring the callback-exclusion
// contract of Device.
func (d *otoDevice) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filled := 0
	for filled < len(p) {
		if d.off == len(d.bytes) {
			d.render()
		}
		n := copy(p[filled:], d.bytes[d.off:])
		filled += n
		d.off += n
	}
	return filled, nil
}

// render invokes the callback for one buffer and encodes it. Caller holds mu.
func (d *otoDevice) render() {
	d.spec.Callback(d.frames)
	for i, v := range d.frames {
		binary.LittleEndian.PutUint32(d.bytes[i*4:i*4+4], math.Float32bits(v))
	}
	d.off = 0
}

func (d *otoDevice) Pause() {
	d.player.Pause()
}

func (d *otoDevice) Resume() {
	d.player.Play()
}

func (d *otoDevice) Lock() {
	d.mu.Lock()
}

func (d *otoDevice) Unlock() {
	d.mu.Unlock()
}

func (d *otoDevice) Close() error {
	if err := d.player.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
