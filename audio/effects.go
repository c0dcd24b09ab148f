package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/food-drop/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateErrorSound generates a short harsh buzz for a blocked drop
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(100.0, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, WaveSaw, rate)
	return newVolume(s, cfg.EffectVolumes[SoundError]*cfg.MasterVolume)
}

// CreateBellSound generates a ringing ding for the end of a session
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5) with an octave overtone
	fund := tone(880.0, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, WaveSine, rate)
	over := tone(1760.0, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, WaveSine, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	return newVolume(mixed, cfg.EffectVolumes[SoundBell]*cfg.MasterVolume)
}

// CreateWhooshSound generates a noise swell for the plane taking off
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(0, parameter.WhooshSoundDuration, parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, WaveNoise, rate)
	return newVolume(s, cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume)
}

// CreateThudSound generates a low sine knock for a landed deposit
func CreateThudSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.ThudFrequency, parameter.ThudSoundDuration, parameter.ThudSoundAttack, parameter.ThudSoundRelease, WaveSine, rate)
	return newVolume(s, cfg.EffectVolumes[SoundThud]*cfg.MasterVolume)
}

// CreateZipSound generates a bright square blip for a boost
func CreateZipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.ZipFrequency, parameter.ZipSoundDuration, parameter.ZipSoundAttack, parameter.ZipSoundRelease, WaveSquare, rate)
	return newVolume(s, cfg.EffectVolumes[SoundZip]*cfg.MasterVolume)
}

// CreateCoinSound generates a two-note chime for a fed agent
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := tone(987.77, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, WaveSquare, rate)
	n2 := tone(1318.51, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, WaveSquare, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundCoin]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundError:
		return CreateErrorSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundThud:
		return CreateThudSound(cfg)
	case SoundZip:
		return CreateZipSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	default:
		return nil
	}
}
