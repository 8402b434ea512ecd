package lexicon

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrEmptyCategory is returned when a category has no words
	ErrEmptyCategory = errors.New("category has no words")
	// ErrMissingCategory is returned when a category is absent from the dictionary
	ErrMissingCategory = errors.New("category missing from dictionary")
)

// WordBank hands out words without immediate repetition
//
// Unavailability is tracked per string, not per category: a word listed under
// two categories ("fish") is one entry. Recycling a category clears every word
// of that category, which can free the same string for its other category too.
type WordBank struct {
	dict     Dictionary
	used     map[string]struct{}
	recycles [categoryCount]int
	rng      *rand.Rand
}

// NewWordBank validates dict and builds a bank around a copy of it
// Every declared category must be present with at least one word
func NewWordBank(dict Dictionary, rng *rand.Rand) (*WordBank, error) {
	for _, c := range AllCategories() {
		words, ok := dict[c]
		if !ok {
			return nil, fmt.Errorf("%s: %w", c, ErrMissingCategory)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("%s: %w", c, ErrEmptyCategory)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &WordBank{
		dict: dict.Clone(),
		used: make(map[string]struct{}),
		rng:  rng,
	}, nil
}

// Take returns a random available word of category c and marks it unavailable
// An exhausted category is recycled first, so Take only fails on a bad category
func (b *WordBank) Take(c Category) (string, error) {
	pool := b.dict[c]
	if len(pool) == 0 {
		return "", fmt.Errorf("%s: %w", c, ErrEmptyCategory)
	}

	available := b.Available(c)
	if len(available) == 0 {
		b.recycle(c)
		available = pool
	}

	word := available[b.rng.Intn(len(available))]
	b.used[word] = struct{}{}
	return word, nil
}

// Release marks a previously taken word available again
func (b *WordBank) Release(word string) {
	delete(b.used, word)
}

// IsAvailable reports whether word is not currently marked unavailable
func (b *WordBank) IsAvailable(word string) bool {
	_, used := b.used[word]
	return !used
}

// Available returns the words of c not currently marked unavailable, in dictionary order
func (b *WordBank) Available(c Category) []string {
	pool := b.dict[c]
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if _, used := b.used[w]; !used {
			out = append(out, w)
		}
	}
	return out
}

// Categories returns the categories the bank serves, in enum order
func (b *WordBank) Categories() []Category {
	out := make([]Category, 0, len(b.dict))
	for _, c := range AllCategories() {
		if _, ok := b.dict[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Words returns the full word list of c
func (b *WordBank) Words(c Category) []string {
	return append([]string(nil), b.dict[c]...)
}

// Recycles returns how many times category c has been fully recycled
func (b *WordBank) Recycles(c Category) int {
	if !c.Valid() {
		return 0
	}
	return b.recycles[c]
}

// UnavailableCount returns the size of the unavailable set
func (b *WordBank) UnavailableCount() int {
	return len(b.used)
}

func (b *WordBank) recycle(c Category) {
	for _, w := range b.dict[c] {
		delete(b.used, w)
	}
	b.recycles[c]++
}
