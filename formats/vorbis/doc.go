// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding into audio.Samples.
//
// This package uses github.com/jfreymuth/oggvorbis to decode the stream in
// one shot; the decoder's float32 output becomes the Sample's data directly.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("music.ogg")
//	sample, err := decoder.Decode(file)
package vorbis
