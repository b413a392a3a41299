package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// GoalTaskUpdate holds a partial-field merge for a goal task.
type GoalTaskUpdate struct {
	Title   *string
	DueDate *string
}

// AddGoalTask creates a task owned by the given goal and appends its ID to
// the goal's ordered task list. Returns false if the goal does not exist.
func (s *Store) AddGoalTask(goalID, title, dueDate string) (types.GoalTask, bool) {
	s.mu.Lock()
	goal, ok := s.state.GoalByID(goalID)
	if !ok {
		s.mu.Unlock()
		return types.GoalTask{}, false
	}

	task := types.GoalTask{
		ID:        s.newID(),
		Title:     title,
		GoalID:    goalID,
		DueDate:   dueDate,
		CreatedAt: s.now(),
	}
	s.state.GoalTasks = append(s.state.GoalTasks, task)
	goal.GoalTaskIDs = append(goal.GoalTaskIDs, task.ID)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Task added")
	return task, true
}

// UpdateGoalTask merges the given fields into the task. Returns false if the
// task does not exist.
func (s *Store) UpdateGoalTask(id string, u GoalTaskUpdate) (types.GoalTask, bool) {
	s.mu.Lock()
	task, ok := s.state.GoalTaskByID(id)
	if !ok {
		s.mu.Unlock()
		return types.GoalTask{}, false
	}
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.DueDate != nil {
		task.DueDate = *u.DueDate
	}
	updated := *task
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Task updated")
	return updated, true
}

// ToggleGoalTask flips the task's completion, keeps CompletedAt in lockstep,
// and awards or revokes the task XP in the same transition. Returns false if
// the task does not exist.
func (s *Store) ToggleGoalTask(id string) (types.GoalTask, bool) {
	s.mu.Lock()
	task, ok := s.state.GoalTaskByID(id)
	if !ok {
		s.mu.Unlock()
		return types.GoalTask{}, false
	}

	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
		s.state.Progress = applyXP(s.state.Progress, -XPGoalTaskComplete)
	} else {
		now := s.now()
		task.Completed = true
		task.CompletedAt = &now
		s.state.Progress = applyXP(s.state.Progress, XPGoalTaskComplete)
	}
	updated := *task
	data := s.encode()
	s.mu.Unlock()

	msg := "Task completed"
	if !updated.Completed {
		msg = "Task reopened"
	}
	s.commit(data, msg)
	return updated, true
}

// DeleteGoalTask removes the task and pulls its ID out of the owning goal's
// task list. Returns false if the task does not exist.
func (s *Store) DeleteGoalTask(id string) bool {
	s.mu.Lock()
	task, ok := s.state.GoalTaskByID(id)
	if !ok {
		s.mu.Unlock()
		return false
	}
	goalID := task.GoalID

	tasks := make([]types.GoalTask, 0, len(s.state.GoalTasks)-1)
	for _, t := range s.state.GoalTasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.state.GoalTasks = tasks

	if goal, ok := s.state.GoalByID(goalID); ok {
		goal.GoalTaskIDs = removeString(goal.GoalTaskIDs, id)
	}
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Task deleted")
	return true
}

// removeString returns ids without every occurrence of id, preserving order.
// The result is freshly allocated; the input slice and any snapshot sharing
// it are left untouched.
func removeString(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
