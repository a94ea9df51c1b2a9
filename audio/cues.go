package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"stickbrawl/sim"
)

var allCues = []sim.Cue{sim.CuePunch, sim.CueHit, sim.CueSpecial, sim.CueGun}

// voice is one playing instance of a cue.
type voice struct {
	stream beep.StreamSeeker
	done   atomic.Bool
}

// Cues plays the fight sound effects through a single mixer. Each cue has at
// most one voice: replaying a sounding cue either rewinds it or is ignored.
type Cues struct {
	mu      sync.Mutex
	buffers map[sim.Cue]*beep.Buffer
	voices  map[sim.Cue]*voice
	mixer   *beep.Mixer
	started bool
	enabled bool
}

// NewCues synthesizes every cue at the configured volume. No device is opened
// until Start.
func NewCues(cfg sim.AudioConfig) *Cues {
	c := &Cues{
		buffers: make(map[sim.Cue]*beep.Buffer, len(allCues)),
		voices:  make(map[sim.Cue]*voice, len(allCues)),
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
	for _, cue := range allCues {
		c.buffers[cue] = render(cue, cfg.Volume)
	}
	return c
}

// Start opens the default output device and begins streaming the mixer.
func (c *Cues) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || !c.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(c.mixer)
	c.started = true
	return nil
}

// Close stops playback and releases the device.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.started = false
}

// Play implements sim.Audio.
func (c *Cues) Play(cue sim.Cue, rewind bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}
	buf, ok := c.buffers[cue]
	if !ok || buf.Len() == 0 {
		return
	}

	c.lockSpeaker()
	defer c.unlockSpeaker()

	if v, ok := c.voices[cue]; ok && !v.done.Load() {
		if rewind {
			_ = v.stream.Seek(0)
		}
		return
	}

	v := &voice{stream: buf.Streamer(0, buf.Len())}
	c.voices[cue] = v
	c.mixer.Add(beep.Seq(v.stream, beep.Callback(func() {
		v.done.Store(true)
	})))
}

// Playing reports whether cue currently has a sounding voice.
func (c *Cues) Playing(cue sim.Cue) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.voices[cue]
	return ok && !v.done.Load()
}

// The speaker goroutine reads the mixer and the voices under speaker.Lock.
func (c *Cues) lockSpeaker() {
	if c.started {
		speaker.Lock()
	}
}

func (c *Cues) unlockSpeaker() {
	if c.started {
		speaker.Unlock()
	}
}
