package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"stickbrawl/sim"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite wave generator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, freq, duration, wave, rate)
}

// newSweep glides linearly from one frequency to another over duration.
func newSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	samples := rate.N(duration)
	o := &oscillator{
		freq:     from,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(samples))),
	}
	if samples > 0 {
		o.sweep = (to - from) / float64(samples)
	}
	return o
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
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with attack/release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, sampleRate), d, attack, release, sampleRate)
}

func sweep(from, to float64, d, attack, release time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(newSweep(from, to, d, wave, sampleRate), d, attack, release, sampleRate)
}

// mix layers streams, cut to d.
func mix(d time.Duration, s ...beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), beep.Mix(s...))
}

// punch: short thump with a noise snap
func punchSound() beep.Streamer {
	return mix(90*time.Millisecond,
		newVolume(sweep(180, 60, 90*time.Millisecond, 2*time.Millisecond, 70*time.Millisecond, WaveSine), 0.8),
		newVolume(tone(0, 40*time.Millisecond, time.Millisecond, 35*time.Millisecond, WaveNoise), 0.3),
	)
}

// hit: low square crunch
func hitSound() beep.Streamer {
	return mix(140*time.Millisecond,
		newVolume(tone(90, 140*time.Millisecond, 2*time.Millisecond, 110*time.Millisecond, WaveSquare), 0.35),
		newVolume(tone(0, 80*time.Millisecond, time.Millisecond, 70*time.Millisecond, WaveNoise), 0.4),
	)
}

// special: rising saw with an octave overtone
func specialSound() beep.Streamer {
	d := 450 * time.Millisecond
	return mix(d,
		newVolume(sweep(220, 880, d, 20*time.Millisecond, 200*time.Millisecond, WaveSaw), 0.4),
		newVolume(sweep(440, 1760, d, 20*time.Millisecond, 250*time.Millisecond, WaveSine), 0.25),
	)
}

// gun: noise crack followed by a falling tail
func gunSound() beep.Streamer {
	return beep.Seq(
		newVolume(tone(0, 30*time.Millisecond, 0, 20*time.Millisecond, WaveNoise), 0.6),
		newVolume(sweep(600, 150, 70*time.Millisecond, 0, 60*time.Millisecond, WaveSquare), 0.2),
	)
}

// soundFor synthesizes cue at unity volume.
func soundFor(cue sim.Cue) beep.Streamer {
	switch cue {
	case sim.CuePunch:
		return punchSound()
	case sim.CueHit:
		return hitSound()
	case sim.CueSpecial:
		return specialSound()
	case sim.CueGun:
		return gunSound()
	default:
		return nil
	}
}

// render buffers a cue so it can be replayed and rewound.
func render(cue sim.Cue, volume float64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	if s := soundFor(cue); s != nil {
		buf.Append(newVolume(s, volume))
	}
	return buf
}
