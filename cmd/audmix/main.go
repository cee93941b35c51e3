// SPDX-License-Identifier: EPL-2.0

// Command audmix is a small front end for the mixing engine: play sound
// files, drive a Lua script, or bounce a mix to a WAV file offline.
package main

func main() {
	Execute()
}
