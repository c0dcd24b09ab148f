package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Error Sound (blocked drop)
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Bell Sound (game over)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Whoosh Sound (plane dispatched)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Coin Sound (agent fed)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Thud Sound (deposit landed)
const (
	ThudSoundDuration = 120 * time.Millisecond
	ThudSoundAttack   = 2 * time.Millisecond
	ThudSoundRelease  = 100 * time.Millisecond
	ThudFrequency     = 70.0 // Hz
)

// Zip Sound (boost applied)
const (
	ZipSoundDuration = 90 * time.Millisecond
	ZipSoundAttack   = 5 * time.Millisecond
	ZipSoundRelease  = 40 * time.Millisecond
	ZipFrequency     = 660.0 // Hz
)
