// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/engine"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
)

// DefaultVolume is used by Play when no volume is given.
const DefaultVolume = 0.5

// Channel is an opaque reference to a voice started by Play. The id stays
// valid for the voice's lifetime; once IsPlaying reports false the id is
// dead and setters on it are no-ops.
type Channel struct {
	id engine.ChannelID
}

// Valid reports whether the reference ever pointed at a voice. Play returns
// an invalid reference for unknown sound names.
func (c Channel) Valid() bool {
	return c.id != engine.InvalidChannel
}

// ID returns the raw channel id, for hosts (e.g. a scripting VM) that hand
// out numeric handles.
func (c Channel) ID() uint64 {
	return uint64(c.id)
}

// ChannelRef rebuilds a reference from a raw id previously obtained via ID.
func ChannelRef(id uint64) Channel {
	return Channel{id: engine.ChannelID(id)}
}

// Player is the host-facing surface: a sound registry plus the mixing
// engine. Load, Play, the setters and Update all belong to one control
// thread (typically the host's frame loop); only the registry is guarded
// for concurrent loading.
type Player struct {
	engine  *engine.Engine
	formats *audio.Registry

	sounds map[string]*audio.Sample
	mtx    *sync.Mutex

	maxVoices int
}

// Option configures a Player.
type Option func(*playerConfig)

type playerConfig struct {
	open      device.Opener
	maxVoices int
}

// WithDevice selects the device backend. The default is the oto output
// device; tests and offline rendering pass device.NullOpener.
func WithDevice(open device.Opener) Option {
	return func(c *playerConfig) { c.open = open }
}

// WithPolyphony caps the number of audible voices. Voices over the cap are
// virtualized — they keep advancing but mix silence — and are revived
// oldest-first as slots free up. Zero means no cap.
func WithPolyphony(voices int) Option {
	return func(c *playerConfig) { c.maxVoices = voices }
}

// New opens the audio device and returns a ready player with the wav, ogg,
// mp3 and aiff decoders registered. Fails with a wrapped
// device.ErrDeviceUnavailable when the backend cannot open an output.
func New(opts ...Option) (*Player, error) {
	cfg := playerConfig{open: device.OpenOto}
	for _, opt := range opts {
		opt(&cfg)
	}

	eng, err := engine.New(cfg.open)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	formats := audio.NewRegistry()
	formats.Register("wav", wav.Decoder{})
	formats.Register("ogg", vorbis.Decoder{})
	formats.Register("mp3", mp3.Decoder{})
	formats.Register("aiff", aiff.Decoder{})
	formats.Register("aif", aiff.Decoder{})

	return &Player{
		engine:    eng,
		formats:   formats,
		sounds:    make(map[string]*audio.Sample),
		mtx:       &sync.Mutex{},
		maxVoices: cfg.maxVoices,
	}, nil
}

// Formats exposes the decoder registry so callers can add formats.
func (p *Player) Formats() *audio.Registry {
	return p.formats
}

// Engine exposes the underlying engine, mainly for tests and custom
// channel sources.
func (p *Player) Engine() *engine.Engine {
	return p.engine
}

// Load decodes the file at path and stores it under name, replacing any
// sound already there. The decoder is picked by file extension. The decoded
// sample is converted to the device rate and folded to at most two channels
// before it becomes playable.
func (p *Player) Load(name, path string) error {
	d, ok := p.formats.ForPath(path)
	if !ok {
		return fmt.Errorf("%w: %q", audio.ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	return p.decodeAndStore(name, d, f)
}

// LoadBytes decodes in-memory data in the named format (a registry key such
// as "wav") and stores it under name.
func (p *Player) LoadBytes(name, format string, data []byte) error {
	d, ok := p.formats.Get(format)
	if !ok {
		return fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}
	return p.decodeAndStore(name, d, bytes.NewReader(data))
}

// LoadSample stores an already decoded sample under name, applying the same
// rate and layout normalization as Load.
func (p *Player) LoadSample(name string, s *audio.Sample) error {
	normalized, err := normalize(s)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.sounds[name] = normalized
	return nil
}

func (p *Player) decodeAndStore(name string, d audio.Decoder, r io.Reader) error {
	s, err := d.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", name, err)
	}
	return p.LoadSample(name, s)
}

func normalize(s *audio.Sample) (*audio.Sample, error) {
	s, err := audio.DownmixStereo(s)
	if err != nil {
		return nil, err
	}
	return audio.Resample(s, engine.SampleRate)
}

// Unload removes the named sound. Channels already playing it keep their
// borrowed buffer until they finish.
func (p *Player) Unload(name string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	delete(p.sounds, name)
}

// UnloadAll removes every loaded sound.
func (p *Player) UnloadAll() {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	clear(p.sounds)
}

// Sound returns the decoded, normalized sample stored under name, or
// ErrUnknownSound. The buffer is shared with every voice playing it; treat
// it as read-only.
func (p *Player) Sound(name string) (*audio.Sample, error) {
	if s := p.sample(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

// SampleFrames reports the frame count of a loaded sound at the device
// rate, or 0 for an unknown name.
func (p *Player) SampleFrames(name string) int {
	return p.sample(name).Frames()
}

func (p *Player) sample(name string) *audio.Sample {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.sounds[name]
}

// Play starts the named sound at DefaultVolume, centered. The voice starts
// pending and is mixed from the first callback after the next Update. For
// an unloaded name the returned reference is invalid and every operation on
// it is a no-op.
func (p *Player) Play(name string) Channel {
	return p.PlayVolumePan(name, DefaultVolume, 0)
}

// PlayVolume starts the named sound centered at the given volume.
func (p *Player) PlayVolume(name string, volume float32) Channel {
	return p.PlayVolumePan(name, volume, 0)
}

// PlayVolumePan starts the named sound with the given volume in [0,1] and
// pan in [-1,+1].
func (p *Player) PlayVolumePan(name string, volume, pan float32) Channel {
	sample := p.sample(name)
	if sample == nil {
		return Channel{}
	}

	sc := &sampleChannel{
		soundID: name,
		sample:  sample,
		player:  p,
	}
	sc.next.volume = clamp(volume, 0, 1)
	sc.next.pan = clamp(pan, -1, 1)

	id := p.engine.ChannelInit(sc.mix, sc.update, sc.finish, sc)
	return Channel{id: id}
}

// channel resolves a reference to its live sample channel, or nil when the
// id is dead or never was one of ours.
func (p *Player) channel(c Channel) (*engine.Channel, *sampleChannel) {
	if !c.Valid() {
		return nil, nil
	}
	ch, ok := p.engine.Get(c.id)
	if !ok {
		return nil, nil
	}
	sc, ok := ch.Userdata.(*sampleChannel)
	if !ok {
		return nil, nil
	}
	return ch, sc
}

// Stop requests a fade-out on the voice. Idempotent; dead ids are no-ops.
func (p *Player) Stop(c Channel) {
	if c.Valid() {
		p.engine.Stop(c.id)
	}
}

// StopAll requests a fade-out on every voice.
func (p *Player) StopAll() {
	p.engine.StopAll()
}

// SetVolume changes the voice's volume, clamped to [0,1]. The change is
// promoted by the next Update and then smoothed over a few hundred frames.
func (p *Player) SetVolume(c Channel, volume float32) {
	if _, sc := p.channel(c); sc != nil {
		sc.next.volume = clamp(volume, 0, 1)
	}
}

// SetPan changes the voice's stereo position, clamped to [-1,+1].
func (p *Player) SetPan(c Channel, pan float32) {
	if _, sc := p.channel(c); sc != nil {
		sc.next.pan = clamp(pan, -1, 1)
	}
}

// SetLoop makes the voice wrap to the start instead of stopping when it
// runs out of frames.
func (p *Player) SetLoop(c Channel, loop bool) {
	if _, sc := p.channel(c); sc != nil {
		sc.next.loop = loop
	}
}

// SetPosition seeks the voice to a frame index. The seek wins over the
// advancing playhead at the next Update.
func (p *Player) SetPosition(c Channel, frame int) {
	if _, sc := p.channel(c); sc != nil {
		if frame < 0 {
			frame = 0
		}
		sc.next.position = frame
		sc.next.gen++
	}
}

// Position reports the voice's playhead in frames, or 0 for a dead id.
func (p *Player) Position(c Channel) int {
	if _, sc := p.channel(c); sc != nil {
		return sc.current.position
	}
	return 0
}

// ChannelState reports the voice's lifecycle state. ok is false for a dead
// id, for which the state is Last.
func (p *Player) ChannelState(c Channel) (state engine.State, ok bool) {
	ch, _ := p.channel(c)
	if ch == nil {
		return engine.Last, false
	}
	return ch.State(), true
}

// IsPlaying reports whether the voice is still alive: created, playing,
// fading out or virtualized. After it turns false the id is dead for good.
func (p *Player) IsPlaying(c Channel) bool {
	ch, _ := p.channel(c)
	if ch == nil {
		return false
	}
	switch ch.State() {
	case engine.Stopped, engine.Last:
		return false
	}
	return true
}

// Update is the per-frame control tick: it applies the polyphony policy,
// promotes pending voices, commits prop changes and reaps finished voices.
// Call it once per host frame from the control thread.
func (p *Player) Update() {
	p.applyPolyphony()
	p.engine.Update()
}

// applyPolyphony virtualizes voices over the cap, keeping the oldest ids
// audible. Runs before the engine tick so demotions and revivals land in
// the same Update.
func (p *Player) applyPolyphony() {
	if p.maxVoices <= 0 {
		return
	}

	type voice struct {
		id engine.ChannelID
		sc *sampleChannel
	}
	var voices []voice
	p.engine.Each(func(ch *engine.Channel) bool {
		switch ch.State() {
		case engine.Stopped, engine.Last:
			return true
		}
		if sc, ok := ch.Userdata.(*sampleChannel); ok {
			voices = append(voices, voice{id: ch.ID(), sc: sc})
		}
		return true
	})

	sort.Slice(voices, func(i, j int) bool {
		return voices[i].id < voices[j].id
	})

	for i, v := range voices {
		v.sc.next.virtual = i >= p.maxVoices
	}
}

// ActiveVoices counts voices that are still alive: pending, playing,
// fading or virtualized.
func (p *Player) ActiveVoices() int {
	count := 0
	p.engine.Each(func(ch *engine.Channel) bool {
		switch ch.State() {
		case engine.Stopped, engine.Last:
		default:
			count++
		}
		return true
	})
	return count
}

// Pause suspends device callbacks; the engine state is untouched.
func (p *Player) Pause() {
	p.engine.Pause()
}

// Resume re-enables device callbacks.
func (p *Player) Resume() {
	p.engine.Resume()
}

// Close halts the device and releases the engine. Voices that never
// finished are dropped with it.
func (p *Player) Close() {
	p.engine.Free()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
