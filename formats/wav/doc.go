// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding into audio.Samples and 16-bit PCM WAV
// encoding.
//
// Decoding uses the github.com/go-audio library and accepts 8, 16, 24 and
// 32-bit PCM at any sample rate and channel count. The whole file is decoded
// at once — the mixing engine plays from memory, it never streams.
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	sample, err := decoder.Decode(file)
//
// WritePCM16 writes a canonical 44-byte-header WAV; the player's offline
// bounce uses it:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WritePCM16(file, 44100, 2, samples)
//
// The package reports ErrNotWavFile for non-WAV input, ErrUnsupportedBitDepth
// for exotic PCM widths, and ErrUnsupportedWavLayout when the file carries no
// usable format chunk.
package wav
