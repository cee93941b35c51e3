package audmix_test

import (
	"fmt"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/engine"
)

// Example shows the host-facing surface: unknown names yield dead
// references instead of errors, and every operation on them is a no-op.
func Example() {
	player, err := audmix.New(audmix.WithDevice(device.NullOpener))
	if err != nil {
		fmt.Println("no device:", err)
		return
	}
	defer player.Close()

	ch := player.Play("jump") // nothing loaded under this name yet
	fmt.Println("valid:", ch.Valid())
	fmt.Println("playing:", player.IsPlaying(ch))

	// Output:
	// valid: false
	// playing: false
}

// ExamplePlayer_PlayVolumePan walks a voice through its lifecycle against a
// headless device: create, tick, mix, stop, drain.
func ExamplePlayer_PlayVolumePan() {
	player, err := audmix.New(audmix.WithDevice(device.NullOpener))
	if err != nil {
		return
	}
	defer player.Close()

	// A generated tone stands in for a decoded file; real hosts call
	// player.Load("tone", "assets/tone.wav") instead.
	data := make([]float32, engine.SampleRate*2)
	for i := range data {
		data[i] = 0.25
	}
	player.LoadSample("tone", &audio.Sample{
		Data:       data,
		Channels:   2,
		SampleRate: engine.SampleRate,
	})

	ch := player.PlayVolumePan("tone", 0.8, -0.25)
	player.Update() // promote the pending voice

	null := player.Engine().Device().(*device.Null)
	null.Step() // one device buffer of mixed audio

	player.Stop(ch)
	player.Update()
	null.Step() // the stop fade completes inside one buffer
	player.Update()

	fmt.Println("playing after drain:", player.IsPlaying(ch))

	// Output:
	// playing after drain: false
}
