// SPDX-License-Identifier: EPL-2.0

// Package script exposes the player surface to a Lua VM via
// github.com/yuin/gopher-lua.
//
// The host preloads the module once and then drives update from its frame
// loop (or lets the script do it):
//
//	L := lua.NewState()
//	defer L.Close()
//	script.Preload(L, player)
//
//	L.DoString(`
//	    local audio = require("audio")
//	    audio.load("jump", "assets/jump.wav")
//	    local ch = audio.play("jump", 0.8, -0.25)
//	    audio.update()
//	`)
//
// Channel handles are plain numbers on the Lua side; operations on dead
// handles are no-ops and isPlaying reports false, matching the Go surface.
package script
