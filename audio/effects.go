package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/rewind/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample evaluates one cycle of the wave at phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator is a finite mono tone duplicated to both channels
type oscillator struct {
	wave     WaveType
	rate     beep.SampleRate
	freq     float64
	phase    float64
	position int
	length   int
}

// NewOscillator creates a fixed-frequency tone lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{wave: wave, rate: rate, freq: freq, length: rate.N(duration)}
}

// next produces one sample and advances the phase, false once the tone is over
func (o *oscillator) next() (float64, bool) {
	if o.position >= o.length {
		return 0, false
	}
	v := o.wave.sample(o.phase)
	_, o.phase = math.Modf(o.phase + o.freq/float64(o.rate))
	o.position++
	return v, true
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v, ok := o.next()
		if !ok {
			return i, false
		}
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep glides the oscillator frequency linearly from one pitch to another
type sweep struct {
	oscillator
	from, to float64
}

// NewSweep creates a tone gliding between two frequencies over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		oscillator: oscillator{wave: wave, rate: rate, freq: from, length: rate.N(duration)},
		from:       from,
		to:         to,
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.length > 0 {
			s.freq = s.from + (s.to-s.from)*float64(s.position)/float64(s.length)
		}
		v, ok := s.next()
		if !ok {
			return i, false
		}
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

// envelope ramps a stream in over attack and out over release, cutting it at length
type envelope struct {
	streamer beep.Streamer
	position int
	length   int
	attack   int
	release  int
}

// NewEnvelope shapes s with a linear attack and release inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		length:   rate.N(duration),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	if left := e.length - e.position; e.release > 0 && left <= e.release {
		return max(float64(left)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.length {
			return i, false
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; zero is silent since the log scale has no floor
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// shape is the timing shared by every layer of one effect
type shape struct {
	duration, attack, release time.Duration
}

// layer is one enveloped voice of an effect mixed at gain
type layer struct {
	voice   beep.Streamer
	release time.Duration
	gain    float64
}

// compose envelopes and mixes the layers, then applies the effect volume
func compose(sh shape, rate beep.SampleRate, volume float64, layers ...layer) beep.Streamer {
	if len(layers) == 1 {
		return newVolume(NewEnvelope(layers[0].voice, sh.duration, sh.attack, sh.release, rate), volume)
	}
	mixed := make([]beep.Streamer, 0, len(layers))
	for _, l := range layers {
		rel := sh.release
		if l.release > 0 {
			rel = l.release
		}
		mixed = append(mixed, newVolume(NewEnvelope(l.voice, sh.duration, sh.attack, rel, rate), l.gain))
	}
	return newVolume(beep.Mix(mixed...), volume)
}

// CreateRewindSound is a falling saw sweep for time turning backward
func CreateRewindSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sh := shape{parameter.RewindSoundDuration, parameter.RewindSoundAttack, parameter.RewindSoundRelease}
	return compose(sh, rate, cfg.Volume(SoundRewind),
		layer{voice: NewSweep(parameter.RewindSoundFromHz, parameter.RewindSoundToHz, sh.duration, WaveSaw, rate)})
}

// CreateForwardSound is a rising sine sweep for time turning forward
func CreateForwardSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sh := shape{parameter.ForwardSoundDuration, parameter.ForwardSoundAttack, parameter.ForwardSoundRelease}
	return compose(sh, rate, cfg.Volume(SoundForward),
		layer{voice: NewSweep(parameter.ForwardSoundFromHz, parameter.ForwardSoundToHz, sh.duration, WaveSine, rate)})
}

// CreateTimeoutSound is a low square buzz over noise for a clock limit
func CreateTimeoutSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sh := shape{parameter.TimeoutSoundDuration, parameter.TimeoutSoundAttack, parameter.TimeoutSoundRelease}
	return compose(sh, rate, cfg.Volume(SoundTimeout),
		layer{voice: NewOscillator(parameter.TimeoutSoundHz, sh.duration, WaveSquare, rate), gain: 0.8},
		layer{voice: NewOscillator(0, sh.duration, WaveNoise, rate), gain: 0.2},
	)
}

// CreateCollectSound is a short chime with an octave overtone that dies first
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sh := shape{parameter.CollectSoundDuration, parameter.CollectSoundAttack, parameter.CollectSoundRelease}
	return compose(sh, rate, cfg.Volume(SoundCollect),
		layer{voice: NewOscillator(parameter.CollectSoundHz, sh.duration, WaveSine, rate), gain: 0.7},
		layer{voice: NewOscillator(parameter.CollectSoundHz*2, sh.duration, WaveSine, rate), gain: 0.3, release: sh.release / 2},
	)
}

// GetSoundEffect returns a fresh streamer for the sound, nil if unknown
func GetSoundEffect(s SoundType, cfg *AudioConfig) beep.Streamer {
	switch s {
	case SoundRewind:
		return CreateRewindSound(cfg)
	case SoundForward:
		return CreateForwardSound(cfg)
	case SoundTimeout:
		return CreateTimeoutSound(cfg)
	case SoundCollect:
		return CreateCollectSound(cfg)
	}
	return nil
}
