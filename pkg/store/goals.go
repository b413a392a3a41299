package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// GoalParams holds the fields for creating a goal.
type GoalParams struct {
	Title           string
	Why             string
	SuccessCriteria string
	TargetDate      string
	LifeArea        string
	AspirationID    string
	AspirationIDs   []string
}

// GoalUpdate holds a partial-field merge for a goal. Nil fields are left
// unchanged.
type GoalUpdate struct {
	Title           *string
	Why             *string
	SuccessCriteria *string
	TargetDate      *string
	LifeArea        *string
	AspirationID    *string
	AspirationIDs   *[]string
	Status          *string
}

// AddGoal creates a goal with status active and re-runs the focus policy.
func (s *Store) AddGoal(p GoalParams) types.Goal {
	s.mu.Lock()
	goal := types.Goal{
		ID:              s.newID(),
		Title:           p.Title,
		Why:             p.Why,
		SuccessCriteria: p.SuccessCriteria,
		TargetDate:      p.TargetDate,
		LifeArea:        p.LifeArea,
		AspirationID:    p.AspirationID,
		AspirationIDs:   p.AspirationIDs,
		GoalTaskIDs:     []string{},
		HabitIDs:        []string{},
		Status:          types.GoalStatusActive,
		CreatedAt:       s.now(),
	}
	s.state.Goals = append(s.state.Goals, goal)
	s.reapplyFocus()
	goal = *mustGoal(&s.state, goal.ID)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Goal added")
	return goal
}

// UpdateGoal merges the given fields into the goal. Status values are
// persisted as handed in; validation is the caller's concern. The transition
// into the completed status sets CompletedAt and awards completion XP exactly
// once; leaving the completed status clears CompletedAt without removing XP.
// The focus policy is re-run afterwards. Returns false if the goal does not
// exist, leaving the state unchanged.
func (s *Store) UpdateGoal(id string, u GoalUpdate) (types.Goal, bool) {
	s.mu.Lock()
	goal, ok := s.state.GoalByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Goal{}, false
	}

	if u.Title != nil {
		goal.Title = *u.Title
	}
	if u.Why != nil {
		goal.Why = *u.Why
	}
	if u.SuccessCriteria != nil {
		goal.SuccessCriteria = *u.SuccessCriteria
	}
	if u.TargetDate != nil {
		goal.TargetDate = *u.TargetDate
	}
	if u.LifeArea != nil {
		goal.LifeArea = *u.LifeArea
	}
	if u.AspirationID != nil {
		goal.AspirationID = *u.AspirationID
	}
	if u.AspirationIDs != nil {
		goal.AspirationIDs = *u.AspirationIDs
	}
	if u.Status != nil {
		prev := goal.Status
		goal.Status = *u.Status
		switch {
		case *u.Status == types.GoalStatusCompleted && goal.CompletedAt == nil:
			now := s.now()
			goal.CompletedAt = &now
			s.state.Progress = applyXP(s.state.Progress, XPGoalComplete)
		case *u.Status != types.GoalStatusCompleted && prev == types.GoalStatusCompleted:
			// Un-completing restores eligibility but never claws back XP.
			goal.CompletedAt = nil
		}
	}

	s.reapplyFocus()
	updated := *mustGoal(&s.state, id)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Goal updated")
	return updated, true
}

// DeleteGoal removes the goal and cascades to its goal tasks and habits.
// Cascaded habit IDs are pulled out of every remaining goal's HabitIDs. The
// focus policy is re-run afterwards. Returns false if the goal does not
// exist.
func (s *Store) DeleteGoal(id string) bool {
	s.mu.Lock()
	if _, ok := s.state.GoalByID(id); !ok {
		s.mu.Unlock()
		return false
	}

	// Filters allocate fresh slices: snapshots handed out before the delete
	// keep their backing arrays intact.
	goals := make([]types.Goal, 0, len(s.state.Goals)-1)
	for _, g := range s.state.Goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	s.state.Goals = goals

	tasks := make([]types.GoalTask, 0, len(s.state.GoalTasks))
	for _, t := range s.state.GoalTasks {
		if t.GoalID != id {
			tasks = append(tasks, t)
		}
	}
	s.state.GoalTasks = tasks

	var removedHabits []string
	habits := make([]types.Habit, 0, len(s.state.Habits))
	for _, h := range s.state.Habits {
		if h.GoalID == id {
			removedHabits = append(removedHabits, h.ID)
			continue
		}
		habits = append(habits, h)
	}
	s.state.Habits = habits
	for _, hid := range removedHabits {
		s.removeHabitRef(hid)
	}

	s.reapplyFocus()
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Goal deleted")
	return true
}

// SetFocusGoal pins the given goal as the focus goal, forcing manual mode.
// An empty ID, or an ID that is ineligible or unknown, degrades gracefully:
// the policy falls back to auto selection rather than failing.
func (s *Store) SetFocusGoal(id string) {
	s.mu.Lock()
	s.state.FocusMode = types.FocusModeManual
	s.state.FocusGoalID = id
	s.reapplyFocus()
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Focus goal updated")
}

// mustGoal returns the goal pointer for an ID known to exist. Used after
// reapplyFocus to read back derived fields.
func mustGoal(state *types.AppState, id string) *types.Goal {
	g, _ := state.GoalByID(id)
	return g
}
