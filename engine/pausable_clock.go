package engine

import (
	"time"
)

// PausableClock measures frame deltas in sketch time, which stops while paused
// Owned by the host loop goroutine; not safe for concurrent use
type PausableClock struct {
	provider TimeProvider

	lastFrame time.Time // Real time of the previous Frame call
	paused    bool

	pauseStart      time.Time
	totalPausedTime time.Duration

	// Deltas above maxDelta are clamped so a stalled terminal does not teleport words
	maxDelta time.Duration
}

// NewPausableClock creates a clock reading from provider
func NewPausableClock(provider TimeProvider, maxDelta time.Duration) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		lastFrame: provider.Now(),
		maxDelta:  maxDelta,
	}
}

// Frame returns sketch time elapsed since the previous call, 0 while paused
func (pc *PausableClock) Frame() time.Duration {
	now := pc.provider.Now()
	dt := now.Sub(pc.lastFrame)
	pc.lastFrame = now

	if pc.paused || dt < 0 {
		return 0
	}
	if pc.maxDelta > 0 && dt > pc.maxDelta {
		dt = pc.maxDelta
	}
	return dt
}

// Pause stops sketch time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues sketch time advancement without counting the pause
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	now := pc.provider.Now()
	pc.totalPausedTime += now.Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.lastFrame = now
	pc.paused = false
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
