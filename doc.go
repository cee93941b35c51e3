// SPDX-License-Identifier: EPL-2.0

// Package audmix is a real-time audio mixing engine: it keeps a set of
// playing voices and sums them into an output device's buffer on the
// device's own thread.
//
// # Quick Start
//
//	player, err := audmix.New()
//	if err != nil {
//	    // no audio device
//	}
//	defer player.Close()
//
//	player.Load("jump", "assets/jump.wav")
//	ch := player.PlayVolumePan("jump", 0.8, -0.25)
//
//	for running {                 // the host frame loop
//	    player.Update()           // promote, commit props, reap
//	    if !player.IsPlaying(ch) {
//	        // voice finished
//	    }
//	}
//
// # Architecture
//
// The heavy lifting lives in the subpackages; this package ties them to a
// host-facing Player:
//
//   - engine holds the mixing core: channel records with a mix/update/finish
//     capability triple, the pending/playing two-table discipline, and the
//     allocation-free device callback.
//   - device abstracts the output: an oto-backed real device and a headless
//     null device for tests and offline rendering.
//   - audio and formats/ decode WAV, Ogg Vorbis, MP3 and AIFF files into
//     float32 sample buffers and normalize them to the device rate at load
//     time.
//   - script exposes the Player surface to a Lua VM.
//
// The Player itself contributes the sample-buffer voice: per-voice volume,
// pan, loop and seek with double-buffered props, a smoothed volume ramp to
// avoid clicks, and a fade-out on stop.
//
// # Threading
//
// Everything on Player except loading belongs to one control thread. The
// device thread only ever runs the engine's mix callback, under a lock the
// control plane shares. Prop setters and Stop never block: they write
// control-side state that the next Update promotes.
//
// # Offline rendering
//
// A player opened with the null device can bounce its output to a WAV file
// instead of a sound card:
//
//	player, _ := audmix.New(audmix.WithDevice(device.NullOpener))
//	player.Load("song", "song.ogg")
//	player.SetLoop(player.Play("song"), true)
//	player.RenderWAV(out, 44100*10)
package audmix
