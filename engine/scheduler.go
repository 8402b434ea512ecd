package engine

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task
type TaskID uint64

type task struct {
	id   TaskID
	name string
	due  time.Duration
	fn   func()
}

// Scheduler runs delayed tasks on the tick goroutine
//
// Time only moves when Advance is called, so a task never interleaves with
// tick processing: it runs to completion between two ticks. Tasks with equal
// deadlines run in scheduling order. There is no cancellation.
type Scheduler struct {
	elapsed time.Duration
	tasks   []task // Sorted by due, then id
	nextID  TaskID
	fired   uint64
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once d of tick time has elapsed
func (s *Scheduler) After(d time.Duration, name string, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := task{id: s.nextID, name: name, due: s.elapsed + d, fn: fn}

	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > t.due
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.id
}

// Advance moves tick time forward by dt and runs every task now due
// Returns the number of tasks run
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.elapsed += dt
	}

	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= s.elapsed {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		t.fn()
		ran++
		s.fired++
	}
	return ran
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// PendingNamed counts tasks with the given name
func (s *Scheduler) PendingNamed(name string) int {
	n := 0
	for _, t := range s.tasks {
		if t.name == name {
			n++
		}
	}
	return n
}

// NextDue returns the time remaining until the earliest task
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if len(s.tasks) == 0 {
		return 0, false
	}
	return s.tasks[0].due - s.elapsed, true
}

// Elapsed returns the total tick time advanced so far
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Fired returns the total number of tasks run
func (s *Scheduler) Fired() uint64 {
	return s.fired
}
