package session

import (
	"iter"

	"github.com/idilsaglam/tasktracker/internal/model"
	"github.com/idilsaglam/tasktracker/internal/store"
)

// tasks must be called with s.mu held.
func (s *Session) tasks() (*store.TaskStore, error) {
	if !s.active {
		return nil, model.ErrNotAuthenticated
	}
	return s.users.Tasks(s.slot)
}

// CreateTask adds a pending task and returns its display position.
func (s *Session) CreateTask(description, category string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.tasks()
	if err != nil {
		return 0, err
	}
	i, err := ts.Create(description, category)
	if err != nil {
		s.log.Debug().Err(err).Msg("create task rejected")
		return 0, err
	}
	s.log.Debug().Int("position", i+1).Str("category", category).Msg("task created")
	return i + 1, nil
}

// Tasks lists every task of the current user.
func (s *Session) Tasks() ([]Entry, error) {
	return s.list(func(ts *store.TaskStore) iter.Seq2[int, model.Task] { return ts.ListAll() })
}

// PendingTasks lists the tasks that can still be completed.
func (s *Session) PendingTasks() ([]Entry, error) {
	all, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, e := range all {
		if !e.Task.Completed {
			out = append(out, e)
		}
	}
	return out, nil
}

// TasksInCategory lists tasks whose category matches exactly. An empty result
// is reported as ErrNotFound.
func (s *Session) TasksInCategory(category string) ([]Entry, error) {
	out, err := s.list(func(ts *store.TaskStore) iter.Seq2[int, model.Task] { return ts.FindByCategory(category) })
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, model.Errorf(model.ErrNotFound, "no task has category %q", category)
	}
	return out, nil
}

func (s *Session) list(seq func(*store.TaskStore) iter.Seq2[int, model.Task]) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.tasks()
	if err != nil {
		return nil, err
	}
	var out []Entry
	for i, t := range seq(ts) {
		out = append(out, Entry{Position: i + 1, Task: t})
	}
	return out, nil
}

// Complete marks the task at the 1-based display position as completed.
func (s *Session) Complete(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.tasks()
	if err != nil {
		return err
	}
	if err := ts.SetCompleted(position - 1); err != nil {
		s.log.Debug().Err(err).Int("position", position).Msg("complete rejected")
		return err
	}
	s.log.Debug().Int("position", position).Msg("task completed")
	return nil
}

// Order moves pending tasks ahead of completed ones.
func (s *Session) Order() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.tasks()
	if err != nil {
		return err
	}
	ts.Order()
	s.log.Debug().Msg("tasks ordered")
	return nil
}

// Stats counts the current user's completed and pending tasks.
func (s *Session) Stats() (done, pending int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, err := s.tasks()
	if err != nil {
		return 0, 0, err
	}
	done, pending = ts.Stats()
	return done, pending, nil
}
