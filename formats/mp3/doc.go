// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding into audio.Samples.
//
// This package uses github.com/hajimehoshi/go-mp3, which always emits
// 16-bit stereo PCM; the decoded Sample is therefore always two channels.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("music.mp3")
//	sample, err := decoder.Decode(file)
package mp3
