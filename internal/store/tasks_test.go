package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/idilsaglam/tasktracker/internal/model"
)

func collect(seq func(func(int, model.Task) bool)) ([]int, []model.Task) {
	var idx []int
	var tasks []model.Task
	for i, t := range seq {
		idx = append(idx, i)
		tasks = append(tasks, t)
	}
	return idx, tasks
}

func TestCreateThenListAll(t *testing.T) {
	s := NewTaskStore(10)
	i, err := s.Create("Buy milk", "Home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 0 {
		t.Fatalf("expected slot 0, got %d", i)
	}

	idx, tasks := collect(s.ListAll())
	if len(tasks) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(tasks))
	}
	if idx[0] != 0 || tasks[0].Description != "Buy milk" || tasks[0].Category != "Home" || tasks[0].Completed {
		t.Fatalf("unexpected task at %d: %#v", idx[0], tasks[0])
	}
}

func TestListAllIsRestartable(t *testing.T) {
	s := NewTaskStore(5)
	_, _ = s.Create("a", "x")
	seq := s.ListAll()
	_, first := collect(seq)
	_, _ = s.Create("b", "x")
	_, second := collect(seq)
	if len(first) != 1 || len(second) != 2 {
		t.Fatalf("expected rescans to see new tasks, got %d then %d", len(first), len(second))
	}
}

func TestCreateRejectsEmptyDescription(t *testing.T) {
	s := NewTaskStore(3)
	if _, err := s.Create("  ", "Home"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("rejected create must not occupy a slot")
	}
}

func TestCreateWhenFull(t *testing.T) {
	s := NewTaskStore(2)
	for _, d := range []string{"one", "two"} {
		if _, err := s.Create(d, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := s.Create("three", ""); !errors.Is(err, model.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	_, tasks := collect(s.ListAll())
	if tasks[0].Description != "one" || tasks[1].Description != "two" {
		t.Fatalf("existing tasks were overwritten: %#v", tasks)
	}
}

func TestSetCompleted(t *testing.T) {
	s := NewTaskStore(4)
	i, _ := s.Create("Buy milk", "Home")

	if err := s.SetCompleted(i); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	got, _ := s.Get(i)
	if !got.Completed {
		t.Fatalf("expected task to be completed")
	}
	if err := s.SetCompleted(i); !errors.Is(err, model.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestSetCompletedBounds(t *testing.T) {
	s := NewTaskStore(4)
	_, _ = s.Create("a", "")
	for _, i := range []int{-1, 4, 100} {
		if err := s.SetCompleted(i); !errors.Is(err, model.ErrOutOfRange) {
			t.Fatalf("slot %d: expected ErrOutOfRange, got %v", i, err)
		}
	}
	if err := s.SetCompleted(2); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("empty slot: expected ErrNotFound, got %v", err)
	}
}

func TestOrderPartitionsPendingFirst(t *testing.T) {
	s := NewTaskStore(10)
	for _, d := range []string{"a", "b", "c", "d", "e", "f"} {
		_, _ = s.Create(d, "")
	}
	for _, i := range []int{0, 2, 3} {
		if err := s.SetCompleted(i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	s.Order()

	idx, tasks := collect(s.ListAll())
	if len(tasks) != 6 {
		t.Fatalf("order changed the task count: %d", len(tasks))
	}
	seenDone := false
	for k, task := range tasks {
		if task.Completed {
			seenDone = true
		} else if seenDone {
			t.Fatalf("pending task %q at slot %d follows a completed one", task.Description, idx[k])
		}
	}
	for k, i := range idx {
		if i != k {
			t.Fatalf("order moved tasks into new slots: %v", idx)
		}
	}
}

func TestOrderKeepsEveryTask(t *testing.T) {
	s := NewTaskStore(5)
	for _, d := range []string{"x", "y", "z"} {
		_, _ = s.Create(d, "")
	}
	_ = s.SetCompleted(0)
	s.Order()

	seen := map[string]bool{}
	for _, task := range s.ListAll() {
		seen[task.Description] = true
	}
	for _, d := range []string{"x", "y", "z"} {
		if !seen[d] {
			t.Fatalf("task %q lost during order", d)
		}
	}
	done, pending := s.Stats()
	if done != 1 || pending != 2 {
		t.Fatalf("unexpected stats done=%d pending=%d", done, pending)
	}
}

func TestOrderLeavesFreeSlotsInPlace(t *testing.T) {
	s := NewTaskStore(5)
	s.slots[1] = slot[model.Task]{used: true, rec: model.Task{Description: "done", Completed: true}}
	s.slots[3] = slot[model.Task]{used: true, rec: model.Task{Description: "todo"}}

	s.Order()

	if s.slots[0].used || s.slots[2].used || s.slots[4].used {
		t.Fatalf("free slots became occupied")
	}
	if s.slots[1].rec.Description != "todo" || s.slots[3].rec.Description != "done" {
		t.Fatalf("unexpected layout: %#v", s.slots)
	}
}

func TestFindByCategory(t *testing.T) {
	s := NewTaskStore(10)
	_, _ = s.Create("report", "Work")
	_, _ = s.Create("dishes", "Home")
	_, _ = s.Create("meeting", "Work")

	idx, tasks := collect(s.FindByCategory("Work"))
	if len(tasks) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(tasks))
	}
	if idx[0] != 0 || idx[1] != 2 || tasks[0].Description != "report" || tasks[1].Description != "meeting" {
		t.Fatalf("unexpected matches: %v %#v", idx, tasks)
	}

	if _, tasks := collect(s.FindByCategory("work")); len(tasks) != 0 {
		t.Fatalf("category match must be case-sensitive")
	}
	if _, tasks := collect(s.FindByCategory("")); len(tasks) != 0 {
		t.Fatalf("empty category must not match free slots")
	}
}

func TestCreateTextLimits(t *testing.T) {
	s := NewTaskStore(5)
	limit := strings.Repeat("d", MaxTextLen)
	if _, err := s.Create(limit, limit); err != nil {
		t.Fatalf("expected %d-byte fields to be accepted, got %v", MaxTextLen, err)
	}
	if _, err := s.Create(limit+"d", "Home"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation for long description, got %v", err)
	}
	if _, err := s.Create("Buy milk", limit+"c"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation for long category, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("rejected creates must not occupy slots, got %d", s.Len())
	}
}
