// Package sound plays the end-of-game cues. Audio is optional: every
// method is safe to call when the speaker could not be initialized.
package sound

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const sampleRate = beep.SampleRate(44100)

type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	speaker.Close()
	p.initialized = false
}

// GameOver plays the cue matching a terminal status.
func (p *Player) GameOver(status mines.Status) {
	switch status {
	case mines.Failed:
		p.play(explosion())
	case mines.Success:
		p.play(victory())
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// explosion is a burst of noise fading out over 400ms.
func explosion() beep.Streamer {
	total := sampleRate.N(400 * time.Millisecond)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			decay := 1 - float64(pos)/float64(total)
			v := (rand.Float64()*2 - 1) * decay * decay * 0.6
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// victory is a rising C major arpeggio.
func victory() beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.50} {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil
		}
		notes = append(notes,
			beep.Take(sampleRate.N(110*time.Millisecond), tone),
			beep.Silence(sampleRate.N(15*time.Millisecond)),
		)
	}
	return beep.Seq(notes...)
}
