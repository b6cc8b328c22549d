// internal/audio/tone.go

// Package audio plays a short tone when bodies bounce off the viewport.
package audio

import (
	"time"

	"go-bouncing-circles/internal/config"
	"go-bouncing-circles/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// TonePlayer listens for BoundaryReflected and plays a sine blip, at most
// once per cooldown. With a thousand bodies something bounces nearly every
// frame.
type TonePlayer struct {
	rate     beep.SampleRate
	freq     float64
	duration time.Duration
	cooldown time.Duration

	play func(...beep.Streamer)
	now  func() time.Time
	last time.Time

	played  int
	speaker bool
}

// NewTonePlayer initialises the speaker. On failure the caller should carry
// on without sound.
func NewTonePlayer() (*TonePlayer, error) {
	rate := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	p := newTonePlayer(rate, speaker.Play, time.Now)
	p.speaker = true
	return p, nil
}

func newTonePlayer(rate beep.SampleRate, play func(...beep.Streamer), now func() time.Time) *TonePlayer {
	return &TonePlayer{
		rate:     rate,
		freq:     config.ToneFrequency,
		duration: config.ToneDurationMs * time.Millisecond,
		cooldown: config.ToneCooldownMs * time.Millisecond,
		play:     play,
		now:      now,
	}
}

func (p *TonePlayer) OnEvent(e event.Event) {
	if e.Type != event.BoundaryReflected {
		return
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.cooldown {
		return
	}

	tone, err := p.Tone()
	if err != nil {
		return
	}
	p.last = now
	p.played++
	p.play(tone)
}

// Tone builds one blip.
func (p *TonePlayer) Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, p.freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(p.rate.N(p.duration), sine), nil
}

// Played is the number of tones started.
func (p *TonePlayer) Played() int {
	return p.played
}

// Close releases the speaker.
func (p *TonePlayer) Close() {
	if p.speaker {
		speaker.Close()
	}
}
