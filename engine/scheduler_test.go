package engine

import (
	"testing"
	"time"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(30*time.Millisecond, "c", func() { order = append(order, "c") })
	s.After(10*time.Millisecond, "a", func() { order = append(order, "a") })
	s.After(10*time.Millisecond, "b", func() { order = append(order, "b") })

	if ran := s.Advance(5 * time.Millisecond); ran != 0 {
		t.Fatalf("Expected no tasks at 5ms, ran %d", ran)
	}
	if ran := s.Advance(5 * time.Millisecond); ran != 2 {
		t.Fatalf("Expected 2 tasks at 10ms, ran %d", ran)
	}
	if ran := s.Advance(time.Second); ran != 1 {
		t.Fatalf("Expected 1 task at 1s, ran %d", ran)
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, order)
		}
	}
	if s.Pending() != 0 || s.Fired() != 3 {
		t.Errorf("Expected 0 pending / 3 fired, got %d / %d", s.Pending(), s.Fired())
	}
}

func TestSchedulerTaskSchedulingTask(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.After(10*time.Millisecond, "outer", func() {
		count++
		s.After(10*time.Millisecond, "inner", func() { count++ })
	})

	s.Advance(10 * time.Millisecond)
	if count != 1 || s.PendingNamed("inner") != 1 {
		t.Fatalf("Expected inner task pending after outer ran, count=%d", count)
	}

	remaining, ok := s.NextDue()
	if !ok || remaining != 10*time.Millisecond {
		t.Errorf("Expected inner due in 10ms, got %v (%v)", remaining, ok)
	}

	s.Advance(10 * time.Millisecond)
	if count != 2 {
		t.Errorf("Expected both tasks run, count=%d", count)
	}
}

func TestSchedulerZeroAdvanceRunsOverdue(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(0, "now", func() { ran = true })

	s.Advance(0)
	if !ran {
		t.Error("Expected zero-delay task to run on next Advance")
	}
	if _, ok := s.NextDue(); ok {
		t.Error("Expected no pending tasks")
	}
}

func TestSchedulerIgnoresNegativeDelta(t *testing.T) {
	s := NewScheduler()
	s.Advance(-time.Second)
	if s.Elapsed() != 0 {
		t.Errorf("Expected elapsed to stay 0, got %v", s.Elapsed())
	}
}
