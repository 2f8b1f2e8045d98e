// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq        = 880
	eatLength      = 60 * time.Millisecond
	gameOverFreq   = 110
	gameOverLength = 400 * time.Millisecond
)

// Sound plays event cues. The zero value is silent, and every method is safe
// to call whether or not the speaker could be opened.
type Sound struct {
	mu          sync.Mutex
	initialized bool
}

// NewSound creates a silent sound player. Call Initialize to open the speaker.
func NewSound() *Sound {
	return &Sound{}
}

// Initialize opens the speaker. Failure leaves the player silent.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Enabled reports whether cues are audible.
func (s *Sound) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// PlayEat plays a short high chirp.
func (s *Sound) PlayEat() {
	s.tone(eatFreq, eatLength)
}

// PlayGameOver plays a low buzz.
func (s *Sound) PlayGameOver() {
	s.tone(gameOverFreq, gameOverLength)
}

func (s *Sound) tone(freq float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close stops playback and releases the speaker.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
