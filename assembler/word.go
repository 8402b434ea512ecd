package assembler

import (
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/lexicon"
	"github.com/lixenwraith/phrase-drift/vmath"
)

// WordState is the lifecycle stage of a word
type WordState uint8

const (
	WordTraveling WordState = iota
	WordCollected
)

func (s WordState) String() string {
	if s == WordCollected {
		return "collected"
	}
	return "traveling"
}

// Word is a dictionary entry traveling along a lane, or sitting on the collector
type Word struct {
	Text     string
	Category lexicon.Category
	Progress float64
	Speed    float64 // Progress per reference frame at speed multiplier 1
	State    WordState
	Position vmath.Vec3F

	// Slot is the collector fraction frozen at insertion
	Slot float64

	lane *Lane
	// inZone latches center-zone entry so acceptance is checked once per entry
	inZone bool
}

// Lane returns the lane the word was spawned on
func (w *Word) Lane() *Lane {
	return w.lane
}

func (w *Word) payload() *events.WordPayload {
	p := &events.WordPayload{
		Text:     w.Text,
		Category: w.Category.String(),
		Progress: w.Progress,
		Lane:     -1,
	}
	if w.lane != nil {
		p.Lane = w.lane.ID
	}
	return p
}

// advance moves the word along its lane's path
func (w *Word) advance(frames, speedMultiplier float64) {
	w.Progress += w.Speed * speedMultiplier * frames
	w.Position = w.lane.Path.PositionAt(w.Progress)
}
