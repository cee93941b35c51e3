// SPDX-License-Identifier: EPL-2.0

package device

// Callback fills out with interleaved stereo float32 frames. The backend
// invokes it on its own playback thread while holding the device lock, so
// the callback must not allocate or block.
type Callback func(out []float32)

// Spec describes the stream a backend must open. Output format is fixed at
// float32 little-endian, two channels interleaved; BufferFrames is the number
// of frames handed to Callback per invocation.
type Spec struct {
	SampleRate   int
	Channels     int
	BufferFrames int
	Callback     Callback
}

// Device is an open audio output. Lock and Unlock bracket the playback
// callback: while the lock is held by a caller, the backend will not invoke
// Spec.Callback, so state shared with the callback can be mutated safely.
type Device interface {
	// Pause suspends callback invocations. The stream keeps running and
	// plays silence.
	Pause()
	// Resume re-enables callback invocations after Pause.
	Resume()
	// Lock blocks until any in-flight callback returns and keeps further
	// callbacks from starting.
	Lock()
	// Unlock releases Lock.
	Unlock()
	// Close tears the stream down. Errors after Close are swallowed by
	// callers; the device is already terminal.
	Close() error
}

// Opener opens a Device for a Spec. Backends report ErrDeviceUnavailable
// (possibly wrapped) when no output can be acquired.
type Opener func(Spec) (Device, error)
