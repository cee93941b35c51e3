// SPDX-License-Identifier: EPL-2.0

// Package device abstracts the audio output the engine renders into.
//
// A backend opens a stream for a Spec and then pulls audio by invoking
// Spec.Callback on its own thread, one fixed-size buffer at a time. The
// Device interface exposes exactly what the engine needs from a backend:
// pause/resume, a lock that excludes the callback, and close.
//
// Two backends ship with the package:
//
//   - OpenOto plays through the default output device using
//     github.com/ebitengine/oto/v3.
//   - OpenNull is headless; the callback fires only when the owner calls
//     Step. Tests and offline rendering use it to drive playback time
//     deterministically.
//
// OpenOto matches the Opener signature directly; OpenNull returns the
// concrete *Null so its owner can call Step, and NullOpener adapts it to
// Opener. The engine can be handed either opener without knowing which it got.
package device
