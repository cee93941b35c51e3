// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-sound data model shared by the decoders
// in formats/ and the mixing engine.
//
// # Samples
//
// A Sample is a fully decoded sound held in memory: interleaved float32 PCM
// in the range [-1.0, 1.0] with a known channel count and sample rate.
// Decoders produce Samples; the engine plays them. Nothing in this package
// streams — the engine's real-time path must never touch a file or a codec.
//
// # Decoders and the Registry
//
// Each format package (formats/wav, formats/vorbis, formats/mp3,
// formats/aiff) provides a Decoder. The Registry maps format keys to
// decoders so callers can resolve one by name or by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("ogg", vorbis.Decoder{})
//
//	d, ok := registry.ForPath("sfx/jump.ogg")
//	sample, err := d.Decode(file)
//
// # Load-time conversion
//
// The engine mixes at a single fixed rate and never resamples on the hot
// path. Resample and DownmixStereo run once at load time to bring a decoded
// Sample into a playable shape:
//
//	sample, _ = audio.Resample(sample, 44100)
//	sample, _ = audio.DownmixStereo(sample)
//
// Resample uses Catmull-Rom cubic interpolation with a one-pole low-pass
// when downsampling. DownmixStereo folds >2 channel layouts down to stereo;
// mono passes through because the mixer duplicates it on the fly.
package audio
