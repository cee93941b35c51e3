// SPDX-License-Identifier: EPL-2.0

package device

import "sync"

// Null is a headless device: no output thread, no sound card. Callbacks run
// only when the owner calls Step, which makes it the backend for tests and
// for offline rendering, where the caller drives time itself.
type Null struct {
	spec   Spec
	mu     sync.Mutex
	paused bool
	closed bool
	frames []float32
}

// OpenNull opens a headless device for spec.
func OpenNull(spec Spec) (*Null, error) {
	if spec.SampleRate <= 0 || spec.Channels <= 0 || spec.BufferFrames <= 0 || spec.Callback == nil {
		return nil, ErrBadSpec
	}
	return &Null{
		spec:   spec,
		frames: make([]float32, spec.BufferFrames*spec.Channels),
	}, nil
}

// NullOpener adapts OpenNull to the Opener signature.
func NullOpener(spec Spec) (Device, error) {
	return OpenNull(spec)
}

// Step invokes the callback for one buffer under the device lock and returns
// the filled buffer. While paused or after Close the callback is skipped and
// the buffer is zeroed, matching a silent stream. The returned slice is
// reused by the next Step.
func (n *Null) Step() []float32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.paused || n.closed {
		clear(n.frames)
		return n.frames
	}
	n.spec.Callback(n.frames)
	return n.frames
}

func (n *Null) Pause() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paused = true
}

func (n *Null) Resume() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paused = false
}

func (n *Null) Lock() {
	n.mu.Lock()
}

func (n *Null) Unlock() {
	n.mu.Unlock()
}

func (n *Null) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	return nil
}
