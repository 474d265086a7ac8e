// Package audio plays short interface cues for focus moves and activation
// Audio is optional: every method is a no-op until Initialize succeeds
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/oolong/fault"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue names one interface sound
type Cue uint8

const (
	CueMove Cue = iota
	CueActivate
	CueDeactivate
	CueError
)

// cueTone describes a cue as a decaying sine
type cueTone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cueTones = map[Cue]cueTone{
	CueMove:       {freq: 880, duration: 30 * time.Millisecond, volume: 0.12},
	CueActivate:   {freq: 1320, duration: 60 * time.Millisecond, volume: 0.15},
	CueDeactivate: {freq: 660, duration: 60 * time.Millisecond, volume: 0.15},
	CueError:      {freq: 120, duration: 150 * time.Millisecond, volume: 0.2},
}

// CuePlayer mixes cues onto the speaker
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	initialized bool
}

// NewCuePlayer creates a player, silent until Initialize
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// 50ms buffer keeps cue latency below a keystroke
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fault.Wrap(fault.IOWriteFailure, "audio.Initialize", err)
	}

	speaker.Play(p.mixer)
	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Cleanup silences pending cues
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.play = nil
	p.initialized = false
}

// Play queues a cue; unknown cues and an uninitialized player are ignored
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.play == nil {
		return
	}
	tone, ok := cueTones[c]
	if !ok {
		return
	}
	p.play(beep.Take(sampleRate.N(tone.duration), NewToneGenerator(sampleRate, tone.freq, tone.volume, tone.duration)))
}

// ToneGenerator generates a sine with a short attack and exponential decay
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64
	pos    int
}

// NewToneGenerator creates a tone that fades to ~1% over duration
func NewToneGenerator(sr beep.SampleRate, freq, volume float64, duration time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		decay:  math.Log(100) / duration.Seconds(),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 2ms attack avoids a click
		attack := math.Min(t/0.002, 1.0)
		sample := g.volume * attack * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
