// Package sound plays the alert chimes.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

type Cue int

const (
	CueHour Cue = iota
	CueRestComplete
)

const SampleRate = beep.SampleRate(44100)

// Player plays cues on the default audio device.
type Player struct {
	mu      sync.Mutex
	volume  float64
	enabled bool

	initOnce sync.Once
	initErr  error
}

// NewPlayer returns a Player. volume is in beep's exponential scale:
// 0 is unchanged, -1 halves, 1 doubles.
func NewPlayer(volume float64, enabled bool) *Player {
	return &Player{volume: volume, enabled: enabled}
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the chime for c. It does not wait for playback.
func (p *Player) Play(c Cue) error {
	p.mu.Lock()
	enabled, volume := p.enabled, p.volume
	p.mu.Unlock()
	if !enabled {
		return nil
	}

	p.initOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			p.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	if p.initErr != nil {
		return p.initErr
	}

	speaker.Play(&effects.Volume{
		Streamer: Chime(SampleRate, c),
		Base:     2,
		Volume:   volume,
	})
	return nil
}

// Chime builds the streamer for c.
func Chime(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CueRestComplete:
		return beep.Seq(
			tone(sr, 660, 180*time.Millisecond),
			beep.Silence(sr.N(60*time.Millisecond)),
			tone(sr, 880, 180*time.Millisecond),
			beep.Silence(sr.N(60*time.Millisecond)),
			tone(sr, 1320, 400*time.Millisecond),
		)
	default:
		return tone(sr, 880, 250*time.Millisecond)
	}
}

// tone is a sine wave at freq with a linear fade-out over d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(total)
			v := 0.4 * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
