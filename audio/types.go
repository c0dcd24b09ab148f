package audio

import (
	"github.com/lixenwraith/food-drop/event"
	"github.com/lixenwraith/food-drop/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundError  SoundType = iota // Drop blocked
	SoundWhoosh                  // Plane dispatched
	SoundThud                    // Deposit landed
	SoundZip                     // Agent boosted
	SoundCoin                    // Good agent fed
	SoundBell                    // Game over
	soundTypeCount
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at moderate volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.5,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundZip] = 0.6
	cfg.EffectVolumes[SoundThud] = 0.8
	return cfg
}

// SoundFor maps a simulation event to its cue; depletion is silent
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventDropBlocked:
		return SoundError, true
	case event.EventDropRequested:
		return SoundWhoosh, true
	case event.EventDepositSpawned:
		return SoundThud, true
	case event.EventBoostApplied:
		return SoundZip, true
	case event.EventAgentFed:
		return SoundCoin, true
	case event.EventGameOver:
		return SoundBell, true
	default:
		return 0, false
	}
}
