// SPDX-License-Identifier: EPL-2.0

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/ik5/audmix"
)

// ModuleName is the name scripts require the bindings under.
const ModuleName = "audio"

// Preload registers the audio module on L so scripts can
// `local audio = require("audio")`. Channel handles cross the boundary as
// plain numbers; a dead or unknown handle makes every operation a no-op,
// the same contract the Go surface has.
func Preload(L *lua.LState, p *audmix.Player) {
	L.PreloadModule(ModuleName, loader(p))
}

func loader(p *audmix.Player) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), exports(p))
		L.Push(mod)
		return 1
	}
}

func exports(p *audmix.Player) map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"load": func(L *lua.LState) int {
			name := L.CheckString(1)
			path := L.CheckString(2)
			if err := p.Load(name, path); err != nil {
				L.Push(lua.LFalse)
				L.Push(lua.LString(err.Error()))
				return 2
			}
			L.Push(lua.LTrue)
			return 1
		},
		"unload": func(L *lua.LState) int {
			p.Unload(L.CheckString(1))
			return 0
		},
		"unloadAll": func(L *lua.LState) int {
			p.UnloadAll()
			return 0
		},
		"play": func(L *lua.LState) int {
			name := L.CheckString(1)
			volume := float32(L.OptNumber(2, audmix.DefaultVolume))
			pan := float32(L.OptNumber(3, 0))
			ch := p.PlayVolumePan(name, volume, pan)
			L.Push(lua.LNumber(ch.ID()))
			return 1
		},
		"stop": func(L *lua.LState) int {
			p.Stop(ref(L))
			return 0
		},
		"stopAll": func(L *lua.LState) int {
			p.StopAll()
			return 0
		},
		"setVolume": func(L *lua.LState) int {
			p.SetVolume(ref(L), float32(L.CheckNumber(2)))
			return 0
		},
		"setPan": func(L *lua.LState) int {
			p.SetPan(ref(L), float32(L.CheckNumber(2)))
			return 0
		},
		"setLoop": func(L *lua.LState) int {
			p.SetLoop(ref(L), lua.LVAsBool(L.CheckAny(2)))
			return 0
		},
		"setPosition": func(L *lua.LState) int {
			p.SetPosition(ref(L), int(L.CheckNumber(2)))
			return 0
		},
		"position": func(L *lua.LState) int {
			L.Push(lua.LNumber(p.Position(ref(L))))
			return 1
		},
		"channelState": func(L *lua.LState) int {
			state, ok := p.ChannelState(ref(L))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LString(state.String()))
			return 1
		},
		"isPlaying": func(L *lua.LState) int {
			L.Push(lua.LBool(p.IsPlaying(ref(L))))
			return 1
		},
		"update": func(L *lua.LState) int {
			p.Update()
			return 0
		},
	}
}

func ref(L *lua.LState) audmix.Channel {
	return audmix.ChannelRef(uint64(L.CheckNumber(1)))
}
