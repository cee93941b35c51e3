// SPDX-License-Identifier: EPL-2.0

// Package engine implements the real-time mixing core: a set of channels
// summed into a device's output buffer on the device's own thread.
//
// # Channels
//
// A Channel is one voice. It carries a lifecycle state machine and a
// capability triple — mix, update, finish — supplied by a concrete source.
// The engine never knows what a channel plays; the root audmix package
// provides the sample-buffer source, and anything that can fill a stereo
// float buffer can be a channel.
//
// # Two tables
//
// The device thread may be mid-callback at any wall-clock moment, so new
// channels are never inserted into the table it walks. ChannelInit places
// records in the pending table, which only the control thread touches.
// Update briefly takes the device lock, moves all of pending into playing,
// ticks every playing channel's update callback, and finishes and removes
// channels that reached Stopped. The device callback walks playing only.
//
// # Threading
//
// Two threads cooperate. The control thread runs ChannelInit, Update, Stop,
// StopAll, Pause, Resume, Halt and Free. The device thread runs the mix
// callback under the device lock. Update holds the same lock for its whole
// body, so state the callback reads is never torn. Stop and StopAll take no
// lock at all: stopRequested is monotonic, and a stale read just defers the
// stop by one buffer. The callback allocates nothing, blocks on nothing and
// reports no errors — malformed channels are skipped.
package engine
