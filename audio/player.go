// Package audio synthesizes the sketch's chimes on gopxl/beep.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/phrase-drift/events"
)

const (
	SampleRate = beep.SampleRate(48000)

	// ChimeFreq is E5; TickFreq sits two octaves above
	ChimeFreq = 659.25
	TickFreq  = 2637.02
)

// Player owns the speaker mixer
// A player that failed to initialize stays silent; Play is then a no-op
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	// Seams over the global speaker
	start func(rate beep.SampleRate, mixer *beep.Mixer) error
	lock  func(func())
}

// NewPlayer creates a player at volume in [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
		start:  startSpeaker,
		lock:   withSpeakerLock,
	}
}

func startSpeaker(rate beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

func withSpeakerLock(f func()) {
	speaker.Lock()
	defer speaker.Unlock()
	f()
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}

// Initialize opens the audio device once
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := p.start(SampleRate, p.mixer); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	p.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock(p.mixer.Clear)
	p.initialized = false
}

// Play queues s on the mixer; it reports whether the sound was accepted
func (p *Player) Play(s beep.Streamer) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || s == nil {
		return false
	}
	p.lock(func() { p.mixer.Add(s) })
	return true
}

// PlayChime plays the phrase-completion bell
func (p *Player) PlayChime() bool {
	return p.Play(NewChime(ChimeFreq, p.Volume(), SampleRate))
}

// PlayTick plays the word-collected blip
func (p *Player) PlayTick() bool {
	tick, err := NewTick(TickFreq, p.Volume()*0.4, SampleRate)
	if err != nil {
		log.Printf("audio: tick: %v", err)
		return false
	}
	return p.Play(tick)
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = clampVolume(v)
	p.mu.Unlock()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Initialized reports whether the device is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// EventHandler plays sounds for sketch events routed through an events.Router
type EventHandler[T any] struct {
	Player *Player
}

func (h EventHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{events.EventWordCollected, events.EventPhraseCompleted}
}

func (h EventHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	switch ev.Type {
	case events.EventWordCollected:
		h.Player.PlayTick()
	case events.EventPhraseCompleted:
		if h.Player.PlayChime() {
			if p, ok := ev.Payload.(*events.PhrasePayload); ok {
				log.Printf("audio: chime for phrase %d", p.Index)
			}
		}
	}
}
