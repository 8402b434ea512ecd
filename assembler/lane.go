package assembler

import (
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/lexicon"
	"github.com/lixenwraith/phrase-drift/trajectory"
)

// Lane is a non-collector path together with the words currently traveling on it
type Lane struct {
	ID    int
	Path  trajectory.Path
	words []*Word
}

// Words returns the live words in spawn order
func (l *Lane) Words() []*Word {
	return l.words
}

func (l *Lane) countCategory(c lexicon.Category) int {
	n := 0
	for _, w := range l.words {
		if w.Category == c {
			n++
		}
	}
	return n
}

func (l *Lane) remove(target *Word) bool {
	for i, w := range l.words {
		if w == target {
			l.words = append(l.words[:i], l.words[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Lane) clear() {
	l.words = nil
}

// updateLane drops expired words and rolls for a spawn
// Expired words are not released to the bank; their text stays unavailable
// until the category recycles
func (a *Assembler) updateLane(l *Lane, frames, speedMultiplier float64) {
	kept := l.words[:0]
	for _, w := range l.words {
		if l.Path.Expired(w.Progress) {
			a.emit(events.EventWordExpired, w.payload())
			continue
		}
		kept = append(kept, w)
	}
	for i := len(kept); i < len(l.words); i++ {
		l.words[i] = nil
	}
	l.words = kept

	chance := a.opts.SpawnChance * speedMultiplier * frames
	if a.rng.Float64() < chance {
		a.spawn(l)
	}
}

// spawn picks a category biased toward the one the grammar needs and adds a word
func (a *Assembler) spawn(l *Lane) {
	if len(l.words) >= a.opts.MaxWordsPerLane {
		return
	}

	needed := a.grammar.CurrentCategory()
	category := needed
	if l.countCategory(needed) >= a.opts.MinNeededWords && a.rng.Float64() >= a.opts.NeededBias {
		others := make([]lexicon.Category, 0, 7)
		for _, c := range lexicon.AllCategories() {
			if c != needed {
				others = append(others, c)
			}
		}
		category = others[a.rng.Intn(len(others))]
	}

	if _, err := a.spawnWord(l, category); err != nil {
		// Dictionary was validated at construction
		panic(err)
	}
}

func (a *Assembler) spawnWord(l *Lane, c lexicon.Category) (*Word, error) {
	text, err := a.bank.Take(c)
	if err != nil {
		return nil, err
	}

	speed := a.opts.MinSpeed + a.rng.Float64()*(a.opts.MaxSpeed-a.opts.MinSpeed)
	w := &Word{
		Text:     text,
		Category: c,
		Speed:    speed,
		Position: l.Path.PositionAt(0),
		lane:     l,
	}
	l.words = append(l.words, w)
	a.emit(events.EventWordSpawned, w.payload())
	return w, nil
}
