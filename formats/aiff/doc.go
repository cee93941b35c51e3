// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding into audio.Samples.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// 16-bit PCM is supported, which covers the overwhelming majority of AIFF
// files in the wild.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("sound.aiff")
//	sample, err := decoder.Decode(file)
package aiff
