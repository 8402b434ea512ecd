// Package assembler drives the phrase-assembly state machine: words spawn on
// lanes, travel their paths, and are collected into the active template as
// they cross the center of the projected view.
//
// All state is owned by one goroutine. The delayed reset after a completed
// phrase is a task on the assembler's own engine.Scheduler, advanced at the
// start of each Tick, so the tick loop never observes a partial reset.
package assembler

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/phrase-drift/engine"
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/grammar"
	"github.com/lixenwraith/phrase-drift/lexicon"
	"github.com/lixenwraith/phrase-drift/trajectory"
	"github.com/lixenwraith/phrase-drift/vmath"
)

// State is the assembler phase
type State uint8

const (
	StateCollecting State = iota
	StateDisplaying
)

func (s State) String() string {
	if s == StateDisplaying {
		return "displaying"
	}
	return "collecting"
}

const resetTaskName = "phrase-reset"

// ErrResetPending marks a phrase completing while the previous reset has not run
// The buffer and template invariants make this unreachable
var ErrResetPending = errors.New("phrase completed while a reset is pending")

// Projector maps sketch space onto the view used for center-zone detection
type Projector interface {
	Project(p vmath.Vec3F) vmath.Vec2F
	Center() vmath.Vec2F
}

// CompletedPhrase is a full collector buffer, frozen at completion
type CompletedPhrase struct {
	Text     string
	Words    []string
	Template grammar.Template
}

// Assembler owns the grammar cursor, the collector buffer and the lanes
type Assembler struct {
	opts    Options
	bank    *lexicon.WordBank
	grammar *grammar.Grammar
	rng     *rand.Rand

	scheduler *engine.Scheduler
	queue     *events.EventQueue

	collector *trajectory.Collector
	lanes     []*Lane

	buffer       []*Word
	history      []CompletedPhrase
	completed    int
	state        State
	resetPending bool
	tick         uint64
}

// New wires an assembler around an existing bank and grammar
// Lanes are built from opts: all oscillating lines first, then closed curves
func New(opts Options, bank *lexicon.WordBank, g *grammar.Grammar, rng *rand.Rand) (*Assembler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if bank == nil || g == nil {
		return nil, fmt.Errorf("%w: bank and grammar are required", ErrInvalidOptions)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	a := &Assembler{
		opts:      opts,
		bank:      bank,
		grammar:   g,
		rng:       rng,
		scheduler: engine.NewScheduler(),
		queue:     events.NewEventQueue(events.DefaultQueueSize),
		collector: trajectory.NewCollector(opts.BoxSize),
	}

	for i := 0; i < opts.Lines; i++ {
		a.AddLane(trajectory.NewOscillatingLine(opts.BoxSize, rng))
	}
	for i := 0; i < opts.Curves; i++ {
		a.AddLane(trajectory.NewClosedCurve(opts.BoxSize))
	}
	return a, nil
}

// NewDefault builds the default dictionary, templates and lanes from one seed
func NewDefault(opts Options, seed int64) (*Assembler, error) {
	rng := rand.New(rand.NewSource(seed))

	bank, err := lexicon.NewWordBank(lexicon.DefaultDictionary(), rng)
	if err != nil {
		return nil, fmt.Errorf("word bank: %w", err)
	}
	g, err := grammar.New(grammar.DefaultTemplates(), rng)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	return New(opts, bank, g, rng)
}

// AddLane appends a lane for path; collector paths are rejected
func (a *Assembler) AddLane(path trajectory.Path) *Lane {
	if path.Kind() == trajectory.KindCollector {
		panic("assembler: collector cannot carry traveling words")
	}
	l := &Lane{ID: len(a.lanes), Path: path}
	a.lanes = append(a.lanes, l)
	return l
}

// Tick advances the sketch by dt
//
// Order: due scheduled tasks, then per lane (in lane order) expiry and spawn,
// then each of the lane's words advances and is tested against the center zone.
func (a *Assembler) Tick(dt time.Duration, speedMultiplier float64, proj Projector) {
	a.tick++
	a.scheduler.Advance(dt)

	if speedMultiplier < 1 {
		speedMultiplier = 1
	}
	frames := dt.Seconds() * a.opts.ReferenceFPS
	if frames <= 0 {
		return
	}

	center := proj.Center()
	for _, l := range a.lanes {
		a.updateLane(l, frames, speedMultiplier)

		words := append([]*Word(nil), l.words...)
		for _, w := range words {
			w.advance(frames, speedMultiplier)

			inZone := vmath.V2FDist(proj.Project(w.Position), center) < a.opts.CenterThreshold
			if inZone && !w.inZone {
				a.OnWordNearCenter(w)
			}
			w.inZone = inZone
		}
	}
}

// OnWordNearCenter decides whether w joins the collector buffer
// It is called once per entry into the center zone; rejected words keep traveling
func (a *Assembler) OnWordNearCenter(w *Word) bool {
	if !a.accepts(w) {
		a.emit(events.EventWordRejected, w.payload())
		return false
	}

	w.lane.remove(w)
	k := len(a.buffer)
	w.Slot = float64(k) / float64(k+1)
	w.State = WordCollected
	w.Position = a.collector.Slot(w.Slot)
	a.buffer = append(a.buffer, w)
	a.emit(events.EventWordCollected, w.payload())

	if len(a.buffer) == len(a.grammar.Template()) {
		a.completePhrase()
	} else {
		a.grammar.Advance()
	}
	return true
}

func (a *Assembler) accepts(w *Word) bool {
	if a.state != StateCollecting || w.State != WordTraveling {
		return false
	}
	if w.Category != a.grammar.CurrentCategory() {
		return false
	}
	return !a.bufferHas(w.Category)
}

func (a *Assembler) bufferHas(c lexicon.Category) bool {
	for _, b := range a.buffer {
		if b.Category == c {
			return true
		}
	}
	return false
}

func (a *Assembler) completePhrase() {
	if a.resetPending {
		panic(ErrResetPending)
	}

	words := make([]string, len(a.buffer))
	for i, w := range a.buffer {
		words[i] = w.Text
	}
	phrase := CompletedPhrase{
		Text:     strings.Join(words, " "),
		Words:    words,
		Template: append(grammar.Template(nil), a.grammar.Template()...),
	}

	a.history = append(a.history, phrase)
	if len(a.history) > a.opts.HistoryLimit {
		a.history = a.history[len(a.history)-a.opts.HistoryLimit:]
	}
	a.completed++
	a.state = StateDisplaying
	a.resetPending = true

	a.emit(events.EventPhraseCompleted, &events.PhrasePayload{
		Text:     phrase.Text,
		Words:    phrase.Words,
		Template: phrase.Template.String(),
		Index:    a.completed - 1,
	})
	a.scheduler.After(a.opts.ResetDelay, resetTaskName, a.reset)
}

// reset runs as one scheduler task between ticks
func (a *Assembler) reset() {
	for _, w := range a.buffer {
		a.bank.Release(w.Text)
	}
	a.buffer = nil
	for _, l := range a.lanes {
		l.clear()
	}
	a.grammar.SelectNewTemplate()
	a.state = StateCollecting
	a.resetPending = false

	a.emit(events.EventPhraseReset, nil)
	a.emit(events.EventTemplateSelected, &events.TemplatePayload{
		Template: a.grammar.Template().String(),
		Length:   len(a.grammar.Template()),
	})
}

func (a *Assembler) emit(t events.EventType, payload any) {
	a.queue.Push(events.GameEvent{Type: t, Payload: payload, Tick: a.tick})
}

// SetSpawnChance updates the spawn tunable at runtime
func (a *Assembler) SetSpawnChance(p float64) {
	if p >= 0 && p <= 1 {
		a.opts.SpawnChance = p
	}
}

func (a *Assembler) State() State { return a.state }

// Buffer returns the collected words in insertion order
func (a *Assembler) Buffer() []*Word { return a.buffer }

func (a *Assembler) History() []CompletedPhrase { return a.history }

// Completed returns the number of phrases completed since construction
func (a *Assembler) Completed() int { return a.completed }

// LatestPhrase returns the most recent completed phrase
func (a *Assembler) LatestPhrase() (CompletedPhrase, bool) {
	if len(a.history) == 0 {
		return CompletedPhrase{}, false
	}
	return a.history[len(a.history)-1], true
}

func (a *Assembler) Grammar() *grammar.Grammar { return a.grammar }

func (a *Assembler) Bank() *lexicon.WordBank { return a.bank }

func (a *Assembler) Lanes() []*Lane { return a.lanes }

func (a *Assembler) Collector() *trajectory.Collector { return a.collector }

// Events returns the queue the assembler publishes to
func (a *Assembler) Events() *events.EventQueue { return a.queue }

// ResetPending reports whether a completed phrase is waiting for its reset
func (a *Assembler) ResetPending() bool { return a.resetPending }

func (a *Assembler) Options() Options { return a.opts }
