package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440.0, 50*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("wave %d: expected 100 samples, got n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d: sample %d channels differ", wave, i)
			}
		}
	}
}

// TestOscillatorSquare verifies square wave only emits the two rails
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expected*2)
	n, ok := osc.Stream(samples)
	if n != expected || !ok {
		t.Errorf("Expected %d samples with ok=true, got n=%d ok=%v", expected, n, ok)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained stream, got n=%d ok=%v", n2, ok2)
	}
}

// TestEnvelopeShape verifies silence at the start and attenuation in the release
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // Constant +1 at zero frequency
	env := NewEnvelope(osc, duration, attack, release, rate)

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples, got n=%d ok=%v", len(samples), n, ok)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	mid := n / 2
	if samples[mid][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", samples[mid][0])
	}
	if last := samples[n-1][0]; last <= 0 || last >= 0.01 {
		t.Errorf("Expected release tail near zero, got %f", last)
	}
}

// TestSoundEffectsFinite verifies every cue ends and stays in range
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("sound %d: nil streamer", st)
		}

		total := 0
		buf := make([][2]float64, 512)
		for guard := 0; guard < 1000; guard++ {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
					t.Fatalf("sound %d: sample out of range: %f", st, buf[i][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}

		if total == 0 {
			t.Errorf("sound %d: produced no samples", st)
		}
		if total > cfg.SampleRate {
			t.Errorf("sound %d: longer than a second (%d samples)", st, total)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateZipSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", buf[i][0], i)
		}
	}
}
