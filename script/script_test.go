package script

import (
	"os"
	"path/filepath"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/engine"
	"github.com/ik5/audmix/formats/wav"
)

func newLuaPlayer(t *testing.T) (*lua.LState, *audmix.Player, *device.Null) {
	t.Helper()

	p, err := audmix.New(audmix.WithDevice(device.NullOpener))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(p.Close)

	L := lua.NewState()
	t.Cleanup(L.Close)
	Preload(L, p)

	return L, p, p.Engine().Device().(*device.Null)
}

func writeTestWAV(t *testing.T) string {
	t.Helper()

	pcm := make([]int16, engine.SampleRate*2)
	for i := range pcm {
		pcm[i] = 8192 // 0.25
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test wav: %v", err)
	}
	defer f.Close()
	if err := wav.WritePCM16(f, engine.SampleRate, 2, pcm); err != nil {
		t.Fatalf("writing test wav: %v", err)
	}
	return path
}

func TestScript_LoadPlayUpdate(t *testing.T) {
	t.Parallel()

	L, p, dev := newLuaPlayer(t)
	path := writeTestWAV(t)

	if err := L.DoString(`
		local audio = require("audio")
		ok = audio.load("tone", "` + path + `")
		ch = audio.play("tone", 1.0, 0)
		audio.update()
		playing = audio.isPlaying(ch)
		state = audio.channelState(ch)
	`); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if lua.LVAsBool(L.GetGlobal("ok")) != true {
		t.Fatal("audio.load reported failure")
	}
	id := uint64(lua.LVAsNumber(L.GetGlobal("ch")))
	if id == 0 {
		t.Fatal("audio.play returned handle 0")
	}
	if !lua.LVAsBool(L.GetGlobal("playing")) {
		t.Error("audio.isPlaying = false right after play + update")
	}
	if got := lua.LVAsString(L.GetGlobal("state")); got != "playing" {
		t.Errorf("audio.channelState = %q after update, want \"playing\"", got)
	}

	out := dev.Step()
	nonZero := false
	for _, v := range out {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("device output silent for a playing script voice")
	}

	// The Lua handle round-trips into the Go surface.
	if !p.IsPlaying(audmix.ChannelRef(id)) {
		t.Error("Go IsPlaying() = false for the script's handle")
	}
}

func TestScript_LoadFailureReturnsError(t *testing.T) {
	t.Parallel()

	L, _, _ := newLuaPlayer(t)

	if err := L.DoString(`
		local audio = require("audio")
		ok, err = audio.load("nope", "missing.wav")
	`); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if lua.LVAsBool(L.GetGlobal("ok")) {
		t.Error("audio.load succeeded for a missing file")
	}
	if L.GetGlobal("err") == lua.LNil {
		t.Error("audio.load returned no error message")
	}
}

func TestScript_StopAndDrain(t *testing.T) {
	t.Parallel()

	L, _, dev := newLuaPlayer(t)
	path := writeTestWAV(t)

	if err := L.DoString(`
		local audio = require("audio")
		audio.load("tone", "` + path + `")
		ch = audio.play("tone")
		audio.update()
	`); err != nil {
		t.Fatalf("script failed: %v", err)
	}
	dev.Step()

	if err := L.DoString(`
		local audio = require("audio")
		audio.stop(ch)
		audio.update()
	`); err != nil {
		t.Fatalf("stop script failed: %v", err)
	}
	dev.Step() // fade completes

	if err := L.DoString(`
		local audio = require("audio")
		audio.update()
		playing = audio.isPlaying(ch)
	`); err != nil {
		t.Fatalf("drain script failed: %v", err)
	}

	if lua.LVAsBool(L.GetGlobal("playing")) {
		t.Error("audio.isPlaying = true after stop fade drained")
	}
}

func TestScript_DeadHandleOperationsAreNoOps(t *testing.T) {
	t.Parallel()

	L, _, _ := newLuaPlayer(t)

	if err := L.DoString(`
		local audio = require("audio")
		audio.stop(0)
		audio.setVolume(999, 1.0)
		audio.setPan(999, -1)
		audio.setLoop(999, true)
		audio.setPosition(999, 10)
		pos = audio.position(999)
		playing = audio.isPlaying(0)
		state = audio.channelState(999)
	`); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if lua.LVAsNumber(L.GetGlobal("pos")) != 0 {
		t.Error("audio.position != 0 for a dead handle")
	}
	if lua.LVAsBool(L.GetGlobal("playing")) {
		t.Error("audio.isPlaying = true for handle 0")
	}
	if L.GetGlobal("state") != lua.LNil {
		t.Error("audio.channelState != nil for a dead handle")
	}
}
