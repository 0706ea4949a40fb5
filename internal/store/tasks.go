package store

import (
	"iter"
	"strings"

	"github.com/idilsaglam/tasktracker/internal/model"
)

const (
	// DefaultTaskCapacity is the number of task slots each user gets.
	DefaultTaskCapacity = 100
	// MaxTextLen caps description and category length in bytes.
	MaxTextLen = 100
)

// TaskStore is one user's fixed-capacity task list. Slots are filled in
// order and never cleared.
type TaskStore struct {
	slots slots[model.Task]
}

func NewTaskStore(capacity int) *TaskStore {
	if capacity <= 0 {
		capacity = DefaultTaskCapacity
	}
	return &TaskStore{slots: make(slots[model.Task], capacity)}
}

func (s *TaskStore) Cap() int { return len(s.slots) }
func (s *TaskStore) Len() int { return s.slots.count() }

// FirstFreeSlot returns the lowest free slot index.
func (s *TaskStore) FirstFreeSlot() (int, error) {
	i := s.slots.firstFree()
	if i < 0 {
		return -1, model.Errorf(model.ErrCapacityExceeded, "task list is full (%d tasks)", len(s.slots))
	}
	return i, nil
}

// Create stores a new pending task in the first free slot and returns its index.
func (s *TaskStore) Create(description, category string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return -1, model.Errorf(model.ErrValidation, "description must not be empty")
	}
	if len(description) > MaxTextLen {
		return -1, model.Errorf(model.ErrValidation, "description too long (max %d characters)", MaxTextLen)
	}
	if len(category) > MaxTextLen {
		return -1, model.Errorf(model.ErrValidation, "category too long (max %d characters)", MaxTextLen)
	}
	i, err := s.FirstFreeSlot()
	if err != nil {
		return -1, err
	}
	s.slots[i] = slot[model.Task]{used: true, rec: model.Task{
		Description: description,
		Category:    category,
	}}
	return i, nil
}

// Get returns the task in slot i.
func (s *TaskStore) Get(i int) (model.Task, error) {
	if i < 0 || i >= len(s.slots) {
		return model.Task{}, model.Errorf(model.ErrOutOfRange, "slot %d not in [0, %d)", i, len(s.slots))
	}
	if !s.slots[i].used {
		return model.Task{}, model.Errorf(model.ErrNotFound, "slot %d is empty", i)
	}
	return s.slots[i].rec, nil
}

// ListAll yields every occupied slot in slot order. Each iteration rescans
// the store.
func (s *TaskStore) ListAll() iter.Seq2[int, model.Task] {
	return s.filter(func(model.Task) bool { return true })
}

// FindByCategory yields occupied slots whose category equals category exactly.
func (s *TaskStore) FindByCategory(category string) iter.Seq2[int, model.Task] {
	return s.filter(func(t model.Task) bool { return t.Category == category })
}

func (s *TaskStore) filter(keep func(model.Task) bool) iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i := range s.slots {
			if !s.slots[i].used || !keep(s.slots[i].rec) {
				continue
			}
			if !yield(i, s.slots[i].rec) {
				return
			}
		}
	}
}

// SetCompleted marks the task in slot i as completed. Completing a task twice
// is an error, not a no-op.
func (s *TaskStore) SetCompleted(i int) error {
	if _, err := s.Get(i); err != nil {
		return err
	}
	if s.slots[i].rec.Completed {
		return model.Errorf(model.ErrAlreadyCompleted, "task %q", s.slots[i].rec.Description)
	}
	s.slots[i].rec.Completed = true
	return nil
}

// Order partitions the occupied slots so that every pending task comes before
// every completed one. Free slots keep their positions.
func (s *TaskStore) Order() {
	var pos []int
	var pending, done []model.Task
	for i := range s.slots {
		if !s.slots[i].used {
			continue
		}
		pos = append(pos, i)
		if s.slots[i].rec.Completed {
			done = append(done, s.slots[i].rec)
		} else {
			pending = append(pending, s.slots[i].rec)
		}
	}
	for k, t := range append(pending, done...) {
		s.slots[pos[k]].rec = t
	}
}

// Stats counts completed and pending tasks.
func (s *TaskStore) Stats() (done, pending int) {
	for _, t := range s.ListAll() {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
