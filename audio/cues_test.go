package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickbrawl/sim"
)

func drain(s beep.Streamer, n int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < n {
		chunk := buf
		if n-total < len(chunk) {
			chunk = chunk[:n-total]
		}
		got, ok := s.Stream(chunk)
		total += got
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, sampleRate)
		samples := make([][2]float64, 100)

		n, ok := osc.Stream(samples)
		require.True(t, ok)
		require.Equal(t, 100, n)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.Equal(t, samples[i][0], samples[i][1], "mono on both channels")
			if wave == WaveSquare {
				assert.Contains(t, []float64{-1, 1}, samples[i][0])
			}
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorIsFinite(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSine, sampleRate)

	assert.Equal(t, sampleRate.N(50*time.Millisecond), drain(osc, 1<<20))

	n, ok := osc.Stream(make([][2]float64, 10))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelopeRamps(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 5*time.Millisecond, 5*time.Millisecond, sampleRate)
	samples := make([][2]float64, sampleRate.N(d))

	n, _ := env.Stream(samples)
	require.Equal(t, len(samples), n)

	assert.Zero(t, samples[0][0], "attack starts silent")
	mid := samples[n/2][0]
	assert.Equal(t, 1.0, mid, "sustain at full volume")
	assert.Less(t, samples[n-1][0], 0.01, "release fades out")
}

func TestRenderedCueLengths(t *testing.T) {
	c := NewCues(sim.AudioConfig{Enabled: true, Volume: 1})

	assert.Equal(t, sampleRate.N(90*time.Millisecond), c.buffers[sim.CuePunch].Len())
	assert.Equal(t, sampleRate.N(140*time.Millisecond), c.buffers[sim.CueHit].Len())
	assert.Equal(t, sampleRate.N(450*time.Millisecond), c.buffers[sim.CueSpecial].Len())
	assert.Equal(t, sampleRate.N(30*time.Millisecond)+sampleRate.N(70*time.Millisecond), c.buffers[sim.CueGun].Len())
}

func TestPlayRewindsOrIgnores(t *testing.T) {
	c := NewCues(sim.AudioConfig{Enabled: true, Volume: 0.5})

	c.Play(sim.CueSpecial, false)
	require.Equal(t, 1, c.mixer.Len())
	drain(c.mixer, 1000)
	v := c.voices[sim.CueSpecial]
	require.Equal(t, 1000, v.stream.Position())

	c.Play(sim.CueSpecial, false)
	assert.Equal(t, 1000, v.stream.Position(), "still playing, not restarted")
	assert.Equal(t, 1, c.mixer.Len())

	c.Play(sim.CueSpecial, true)
	assert.Zero(t, v.stream.Position(), "rewound to the start")
	assert.Equal(t, 1, c.mixer.Len(), "rewind reuses the voice")
	assert.Same(t, v, c.voices[sim.CueSpecial])
}

func TestPlayAfterCueFinished(t *testing.T) {
	c := NewCues(sim.AudioConfig{Enabled: true, Volume: 0.5})

	c.Play(sim.CueHit, false)
	assert.True(t, c.Playing(sim.CueHit))

	drain(c.mixer, c.buffers[sim.CueHit].Len()+512)
	assert.False(t, c.Playing(sim.CueHit))
	assert.Zero(t, c.mixer.Len())

	c.Play(sim.CueHit, false)
	assert.True(t, c.Playing(sim.CueHit))
	assert.Equal(t, 1, c.mixer.Len())
}

func TestCuesOverlap(t *testing.T) {
	c := NewCues(sim.AudioConfig{Enabled: true, Volume: 0.5})

	c.Play(sim.CuePunch, false)
	c.Play(sim.CueHit, false)
	c.Play(sim.CueGun, true)

	assert.Equal(t, 3, c.mixer.Len())
}

func TestDisabledCuesAreSilent(t *testing.T) {
	c := NewCues(sim.AudioConfig{Enabled: false, Volume: 1})

	require.NoError(t, c.Start(), "disabled audio never opens a device")
	c.Play(sim.CuePunch, true)

	assert.False(t, c.Playing(sim.CuePunch))
	assert.Zero(t, c.mixer.Len())
	c.Close()
}
