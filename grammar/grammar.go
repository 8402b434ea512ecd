package grammar

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/phrase-drift/lexicon"
)

var (
	ErrNoTemplates     = errors.New("no templates")
	ErrTemplateLength  = errors.New("template length out of range")
	ErrInvalidCategory = errors.New("template uses an undeclared category")
	ErrRepeatCategory  = errors.New("template repeats a category")
)

// Grammar holds the template list and the cursor into the active template
// Invariant: 0 <= position < len(active)
type Grammar struct {
	templates []Template
	active    Template
	position  int
	rng       *rand.Rand
}

// New validates templates and selects an initial one
// Repeated categories are rejected since the collector holds one word per category
func New(templates []Template, rng *rand.Rand) (*Grammar, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	for i, t := range templates {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("template %d (%s): %w", i, t, err)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := &Grammar{
		templates: append([]Template(nil), templates...),
		rng:       rng,
	}
	g.SelectNewTemplate()
	return g, nil
}

func validate(t Template) error {
	if len(t) < MinTemplateLen || len(t) > MaxTemplateLen {
		return ErrTemplateLength
	}
	seen := make(map[lexicon.Category]bool, len(t))
	for _, c := range t {
		if !c.Valid() {
			return ErrInvalidCategory
		}
		if seen[c] {
			return ErrRepeatCategory
		}
		seen[c] = true
	}
	return nil
}

// CurrentCategory returns the category the cursor is waiting for
func (g *Grammar) CurrentCategory() lexicon.Category {
	return g.active[g.position]
}

// Advance moves the cursor forward
// At the last index the position is kept and complete is true
func (g *Grammar) Advance() (complete bool) {
	if g.IsLast() {
		return true
	}
	g.position++
	return false
}

// IsLast reports whether the cursor sits on the final category
func (g *Grammar) IsLast() bool {
	return g.position == len(g.active)-1
}

// SelectNewTemplate picks a template uniformly at random and rewinds the cursor
func (g *Grammar) SelectNewTemplate() {
	g.active = g.templates[g.rng.Intn(len(g.templates))]
	g.position = 0
}

// SetTemplate forces the active template, rewinding the cursor
func (g *Grammar) SetTemplate(t Template) error {
	if err := validate(t); err != nil {
		return fmt.Errorf("template %s: %w", t, err)
	}
	g.active = append(Template(nil), t...)
	g.position = 0
	return nil
}

func (g *Grammar) Position() int { return g.position }

func (g *Grammar) Template() Template { return g.active }

func (g *Grammar) Templates() []Template { return g.templates }
