package audio

import (
	"io"
	"testing"
	"time"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (*Sample, error) {
	return &Sample{Data: make([]float32, 200), Channels: 2, SampleRate: 44100}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	oggDecoder := &mockDecoder{name: "ogg"}
	registry.Register("wav", wavDecoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		path   string
		want   Decoder
		wantOK bool
	}{
		{"jump.wav", wavDecoder, true},
		{"music/intro.OGG", oggDecoder, true},
		{"assets/deep/path/sfx.WaV", wavDecoder, true},
		{"noext", nil, false},
		{"bad.flac", nil, false},
		{"file.", nil, false}, // trailing dot, empty extension
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := registry.ForPath(tt.path)
			if ok != tt.wantOK {
				t.Errorf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("ForPath(%q) returned wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestSample_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sample *Sample
		want   int
	}{
		{"stereo", &Sample{Data: make([]float32, 200), Channels: 2}, 100},
		{"mono", &Sample{Data: make([]float32, 200), Channels: 1}, 200},
		{"empty", &Sample{Channels: 2}, 0},
		{"nil", nil, 0},
		{"zero channels", &Sample{Data: make([]float32, 10)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSample_Duration(t *testing.T) {
	t.Parallel()

	s := &Sample{Data: make([]float32, 44100*2), Channels: 2, SampleRate: 44100}
	if got := s.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}

	var nilSample *Sample
	if got := nilSample.Duration(); got != 0 {
		t.Errorf("nil Duration() = %v, want 0", got)
	}
}

func TestSample_Frame(t *testing.T) {
	t.Parallel()

	s := &Sample{Data: []float32{1, 2, 3, 4, 5, 6}, Channels: 2}
	frame := s.Frame(1)
	if len(frame) != 2 || frame[0] != 3 || frame[1] != 4 {
		t.Errorf("Frame(1) = %v, want [3 4]", frame)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
