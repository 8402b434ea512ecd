package assembler

import (
	"errors"
	"fmt"
	"time"
)

// Options tunes the sketch; zero values are not meaningful, start from DefaultOptions
type Options struct {
	BoxSize         float64       // Edge length of the cube in sketch units
	CenterThreshold float64       // Radius of the center zone in projected units
	SpawnChance     float64       // Per reference frame spawn probability at speed 1
	ResetDelay      time.Duration // Display time of a completed phrase
	Lines           int           // Oscillating line lanes
	Curves          int           // Closed curve lanes
	MaxWordsPerLane int
	MinNeededWords  int     // Below this count of the needed category a lane always spawns it
	NeededBias      float64 // Probability of spawning the needed category otherwise
	MinSpeed        float64 // Progress per reference frame
	MaxSpeed        float64
	ReferenceFPS    float64 // Frame rate the per-frame tunables are expressed in
	HistoryLimit    int
}

// DefaultOptions returns the tuning the sketch was designed around
func DefaultOptions() Options {
	return Options{
		BoxSize:         400,
		CenterThreshold: 50,
		SpawnChance:     0.3,
		ResetDelay:      2 * time.Second,
		Lines:           3,
		Curves:          1,
		MaxWordsPerLane: 5,
		MinNeededWords:  3,
		NeededBias:      0.7,
		MinSpeed:        0.0005,
		MaxSpeed:        0.0008,
		ReferenceFPS:    60,
		HistoryLimit:    100,
	}
}

var ErrInvalidOptions = errors.New("invalid options")

// Validate reports the first out-of-range option
func (o Options) Validate() error {
	switch {
	case o.BoxSize <= 0:
		return fmt.Errorf("%w: box size %v", ErrInvalidOptions, o.BoxSize)
	case o.CenterThreshold <= 0:
		return fmt.Errorf("%w: center threshold %v", ErrInvalidOptions, o.CenterThreshold)
	case o.SpawnChance < 0 || o.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %v", ErrInvalidOptions, o.SpawnChance)
	case o.ResetDelay < 0:
		return fmt.Errorf("%w: reset delay %v", ErrInvalidOptions, o.ResetDelay)
	case o.Lines < 0 || o.Curves < 0 || o.Lines+o.Curves == 0:
		return fmt.Errorf("%w: need at least one lane (lines=%d curves=%d)", ErrInvalidOptions, o.Lines, o.Curves)
	case o.MaxWordsPerLane <= 0:
		return fmt.Errorf("%w: max words per lane %d", ErrInvalidOptions, o.MaxWordsPerLane)
	case o.NeededBias < 0 || o.NeededBias > 1:
		return fmt.Errorf("%w: needed bias %v", ErrInvalidOptions, o.NeededBias)
	case o.MinSpeed <= 0 || o.MaxSpeed < o.MinSpeed:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidOptions, o.MinSpeed, o.MaxSpeed)
	case o.ReferenceFPS <= 0:
		return fmt.Errorf("%w: reference fps %v", ErrInvalidOptions, o.ReferenceFPS)
	case o.HistoryLimit <= 0:
		return fmt.Errorf("%w: history limit %d", ErrInvalidOptions, o.HistoryLimit)
	}
	return nil
}
